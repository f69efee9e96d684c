package model

// Book is one record of the books API. Only the fields the album reads are
// declared; anything else the server sends is ignored.
type Book struct {
	Title string `json:"title"`
}

package web

import (
	"github.com/a-h/templ"

	"github.com/RobBrazier/bookalbum/internal/model"
)

const (
	DefaultTitle     = "Album layout"
	PlaceholderImage = "https://source.unsplash.com/random"
	CardText         = "This is a media card. You can use this section to describe the content."
)

// AlbumData is everything the album layout renders from.
type AlbumData struct {
	Title string
	Books []model.Book
	// Year is shown in the footer copyright line.
	Year int
}

func mediaStyle() templ.SafeCSS {
	return templ.SafeCSS("background-image: url(" + PlaceholderImage + ");")
}

package web

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobBrazier/bookalbum/internal/model"
)

func render(t *testing.T, data AlbumData) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Album(data).Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestAlbumNoBooks(t *testing.T) {
	doc := render(t, AlbumData{Title: DefaultTitle, Year: 2026})

	assert.Equal(t, 1, doc.Find("[data-role=grid]").Length())
	assert.Equal(t, 0, doc.Find("[data-role=card]").Length())
	assert.Equal(t, DefaultTitle, strings.TrimSpace(doc.Find("[data-role=title]").Text()))
	assert.Equal(t, DefaultTitle, doc.Find("title").Text())
}

func TestAlbumCardsInOrder(t *testing.T) {
	books := []model.Book{
		{Title: "Dune"},
		{Title: "Neuromancer"},
		{Title: "Hyperion"},
	}
	doc := render(t, AlbumData{Title: DefaultTitle, Books: books, Year: 2026})

	cards := doc.Find("[data-role=card]")
	require.Equal(t, len(books), cards.Length())

	cards.Each(func(i int, card *goquery.Selection) {
		assert.Equal(t, books[i].Title, card.Find("[data-role=card-title]").Text())
		assert.Equal(t, CardText, card.Find("p").Text())

		media := card.Find("[data-role=card-media]")
		assert.Equal(t, "background-image: url("+PlaceholderImage+");", media.AttrOr("style", ""))
		assert.Equal(t, "Image title", media.AttrOr("title", ""))

		actions := card.Find("[data-role=card-action]")
		require.Equal(t, 2, actions.Length())
		assert.Equal(t, "View", actions.Eq(0).Text())
		assert.Equal(t, "Edit", actions.Eq(1).Text())
		actions.Each(func(_ int, button *goquery.Selection) {
			assert.Equal(t, "button", button.AttrOr("type", ""))
			_, hasAction := button.Attr("formaction")
			assert.False(t, hasAction)
		})
	})
}

func TestAlbumEscapesTitles(t *testing.T) {
	books := []model.Book{{Title: `<script>alert("x")</script>`}}
	var buf bytes.Buffer
	require.NoError(t, Album(AlbumData{Books: books, Year: 2026}).Render(context.Background(), &buf))

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestAlbumOddTitlesStillHaveTwoActions(t *testing.T) {
	books := []model.Book{{Title: ""}, {Title: strings.Repeat("long ", 200)}}
	doc := render(t, AlbumData{Books: books, Year: 2026})

	doc.Find("[data-role=card]").Each(func(_ int, card *goquery.Selection) {
		assert.Equal(t, 2, card.Find("[data-role=card-action]").Length())
	})
}

func TestAlbumFooterYear(t *testing.T) {
	doc := render(t, AlbumData{Year: 1999})

	footer := doc.Find("[data-role=footer]")
	require.Equal(t, 1, footer.Length())
	assert.Equal(t, "Footer", footer.Find("h6").Text())

	copyright := footer.Find("[data-role=copyright]").Text()
	assert.Contains(t, copyright, "Copyright ©")
	assert.Contains(t, copyright, "Your Website")
	assert.Contains(t, copyright, strconv.Itoa(1999)+".")
}

func TestAlbumAppliesRegionClasses(t *testing.T) {
	doc := render(t, AlbumData{Books: []model.Book{{Title: "Dune"}}, Year: 2026})

	assert.Equal(t, Class(RegionCard), doc.Find("[data-role=card]").AttrOr("class", ""))
	assert.Equal(t, Class(RegionFooter), doc.Find("[data-role=footer]").AttrOr("class", ""))
	assert.Equal(t, Class(RegionAppBar), doc.Find("[data-role=app-bar]").AttrOr("class", ""))
}

func TestAlbumRendersEveryRegion(t *testing.T) {
	doc := render(t, AlbumData{Books: []model.Book{{Title: "Dune"}}, Year: 2026})

	rendered := map[string]bool{}
	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		rendered[s.AttrOr("class", "")] = true
	})
	for _, region := range Regions() {
		assert.True(t, rendered[Class(region)], "region %s is styled but never rendered", region)
	}
}

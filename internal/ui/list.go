package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/bookmatch/internal/models"
)

var (
	_ list.Item = bookItem{}
	_ list.Item = recommendationItem{}
	_ list.Item = customListItem{}
)

// newItemList builds a delegate-backed list. Views construct their list on
// entry, before any payload arrives, so key fall-through never touches a
// zero-value [list.Model].
func newItemList(items []list.Item, title string) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	return l
}

// bookItem wraps [models.Book] to implement [list.Item].
type bookItem struct {
	book models.Book
}

func (i bookItem) FilterValue() string { return i.book.Title }
func (i bookItem) Title() string       { return i.book.Title }
func (i bookItem) Description() string {
	desc := i.book.Authors
	if i.book.AverageRatingAPI > 0 {
		desc = fmt.Sprintf("%s • %.1f★", desc, i.book.AverageRatingAPI)
	}
	if i.book.UserReadingStatus != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.book.UserReadingStatus)
	}
	return desc
}

// recommendationItem wraps [models.Recommendation] to implement [list.Item].
type recommendationItem struct {
	rec models.Recommendation
}

func (i recommendationItem) FilterValue() string { return i.rec.Book.Title }
func (i recommendationItem) Title() string {
	return fmt.Sprintf("%s (%.0f%%)", i.rec.Book.Title, i.rec.Score)
}
func (i recommendationItem) Description() string {
	desc := i.rec.Book.Authors
	if len(i.rec.Reasons) > 0 {
		desc = fmt.Sprintf("%s • %s", desc, i.rec.Reasons[0])
	}
	return desc
}

// customListItem wraps [models.CustomList] to implement [list.Item].
type customListItem struct {
	list models.CustomList
}

func (i customListItem) FilterValue() string { return i.list.Name }
func (i customListItem) Title() string       { return i.list.Name }
func (i customListItem) Description() string {
	visibility := "private"
	if i.list.IsPublic {
		visibility = "public"
	}
	desc := fmt.Sprintf("%d books • %s", i.list.BookCount, visibility)
	if i.list.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.list.Description)
	}
	return desc
}

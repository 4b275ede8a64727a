package templates

import "github.com/rugbyops/zoneclips/internal/model"

// FlashMessage is a one-shot notification shown on the next page load
type FlashMessage struct {
	Type    string // "success", "error", "info"
	Message string
}

// PageData carries the state every page needs for the layout and nav
type PageData struct {
	Title   string
	Session *model.Session // nil when not logged in
	Flash   *FlashMessage
}

package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// HomePage is the landing page after sign in
type HomePage struct {
	app.Compo
	routed
}

// Render renders the home page
func (h *HomePage) Render() app.UI {
	return app.Div().
		Class("home-page").
		Body(
			app.H2().Text("Home"),
			app.P().Text("Choose where to go next."),
			app.Div().Class("tile-grid").Body(
				&Tile{Title: "Orders", Description: "Browse all orders", Href: h.href(RouteOrders)},
				&Tile{Title: "Orders report", Description: "Totals by status", Href: h.href(RouteOrdersReport)},
			),
		)
}

// Tile is a card linking to another page
type Tile struct {
	app.Compo
	Title       string
	Description string
	Href        string
}

// Render renders the tile
func (t *Tile) Render() app.UI {
	return app.A().
		Href(t.Href).
		Class("tile").
		Body(
			app.H3().Text(t.Title),
			app.P().Text(t.Description),
		)
}

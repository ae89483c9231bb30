package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/drummonds/goOrders/router"
)

type navLink struct {
	Label string
	Href  string
}

// navLinks builds the menu from route names so no path is written twice
func navLinks(rt *router.Router) []navLink {
	menu := []struct{ label, name string }{
		{"Home", RouteHome},
		{"Orders", RouteOrders},
		{"Report", RouteOrdersReport},
		{"Sign in", RouteLogin},
	}
	links := make([]navLink, 0, len(menu))
	for _, item := range menu {
		path, err := rt.PathFor(item.name)
		if err != nil {
			Logger.Warn("Skipping menu entry", "name", item.name, "error", err)
			continue
		}
		links = append(links, navLink{Label: item.label, Href: path})
	}
	return links
}

// NavBar is the navigation bar component
type NavBar struct {
	app.Compo
	Router *router.Router
}

// Render renders the navigation bar
func (n *NavBar) Render() app.UI {
	links := navLinks(n.Router)
	return app.Nav().
		Class("navbar").
		Body(
			app.Div().Class("navbar-brand").Body(
				app.H1().Text("Orders"),
			),
			app.Div().Class("navbar-menu").Body(
				app.Range(links).Slice(func(i int) app.UI {
					return app.A().
						Href(links[i].Href).
						Class("navbar-item").
						Body(app.Text(links[i].Label))
				}),
			),
		)
}

package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/drummonds/goOrders/router"
)

// NotFoundPage is shown for locations with no route
type NotFoundPage struct {
	app.Compo
	routed
	Path string
}

func newNotFoundPage(rt *router.Router, path string) *NotFoundPage {
	p := &NotFoundPage{Path: path}
	p.useRouter(rt)
	return p
}

// Render renders the not found page
func (n *NotFoundPage) Render() app.UI {
	return app.Div().
		Class("not-found-page").
		Body(
			app.H2().Text("Page not found"),
			app.P().Text("Nothing lives at "+n.Path+"."),
			app.A().
				Href(n.href(RouteLogin)).
				Body(app.Text("Go to sign in")),
		)
}

package webapp

import (
	"errors"
	"log/slog"
	"net/url"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/drummonds/goOrders/router"
)

// Logger is global since we will need it everywhere
var Logger = slog.Default()

// App is the root component of the application
type App struct {
	app.Compo
	Instance *Instance
	page     app.UI
}

// OnNav is called on the initial load and on every navigation. go-app also
// calls it while prerendering on the server, where no history is written.
func (a *App) OnNav(ctx app.Context) {
	target, redirect := a.navigate(ctx.Page().URL(), app.IsClient)
	if redirect {
		ctx.Navigate(target)
	}
}

// navigate selects the page for a location and reports whether the browser
// has to move to another location first. Only a client in MemoryHistory
// records the location; in WebHistory the browser address bar is the history.
func (a *App) navigate(u *url.URL, client bool) (string, bool) {
	location := u.Path
	if u.RawQuery != "" {
		location += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		location += "#" + u.EscapedFragment()
	}

	rt := a.Instance.Router
	var match router.Match
	var err error
	if client && rt.Mode() == router.MemoryHistory {
		match, err = rt.Push(location)
	} else {
		match, err = rt.Resolve(location)
	}
	switch {
	case errors.Is(err, router.ErrNotFound):
		Logger.Warn("No route for location", "location", location)
		a.page = newNotFoundPage(rt, u.Path)
		return "", false
	case err != nil:
		Logger.Error("Unable to resolve location", "location", location, "error", err)
		a.page = newNotFoundPage(rt, u.Path)
		return "", false
	}

	a.page = newPage(match.Route, rt)
	if rt.Mode() == router.WebHistory && (match.RedirectedFrom != "" || match.Path != location) {
		Logger.Debug("Redirecting", "from", location, "to", match.Path)
		return match.Path, true
	}
	return "", false
}

// Render renders the app
func (a *App) Render() app.UI {
	page := a.page
	if page == nil {
		page = app.Div().Class("loading").Body(app.Text("Loading..."))
	}
	return app.Div().
		ID(a.Instance.MountTarget).
		Class("app-container").
		Body(
			app.Header().Body(
				&NavBar{Router: a.Instance.Router},
			),
			app.Main().Body(
				app.Div().Class("content").Body(page),
			),
		)
}

// newPage builds the component of a route and hands it the router when it links elsewhere
func newPage(route router.Route, rt *router.Router) app.Composer {
	page := route.Component()
	if l, ok := page.(linker); ok {
		l.useRouter(rt)
	}
	return page
}

// linker is implemented by pages that link to other routes by name
type linker interface {
	useRouter(rt *router.Router)
}

// routed gives a page named links
type routed struct {
	rt *router.Router
}

func (r *routed) useRouter(rt *router.Router) {
	r.rt = rt
}

// href returns the path of a named route, or the root when it is unknown
func (r *routed) href(name string) string {
	if r.rt == nil {
		return "/"
	}
	path, err := r.rt.PathFor(name)
	if err != nil {
		Logger.Warn("Link to unknown route", "name", name, "error", err)
		return "/"
	}
	return path
}

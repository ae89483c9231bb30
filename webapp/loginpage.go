package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// LoginPage shows the sign in form. Credentials are not checked here.
type LoginPage struct {
	app.Compo
	routed
}

// Render renders the login page
func (l *LoginPage) Render() app.UI {
	return app.Div().
		Class("login-page").
		Body(
			app.H2().Text("Sign in"),
			app.Form().
				Class("login-form").
				Body(
					app.Label().For("username").Text("Username"),
					app.Input().
						ID("username").
						Name("username").
						Type("text"),
					app.Label().For("password").Text("Password"),
					app.Input().
						ID("password").
						Name("password").
						Type("password"),
					app.Button().
						Type("button").
						Class("btn-primary").
						OnClick(l.onSignInClick).
						Body(app.Text("Sign in")),
				),
		)
}

// onSignInClick moves on to the home page
func (l *LoginPage) onSignInClick(ctx app.Context, e app.Event) {
	ctx.Navigate(l.href(RouteHome))
}

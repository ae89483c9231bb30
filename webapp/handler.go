package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// HandlerConfig holds the shell settings read from the server config
type HandlerConfig struct {
	Name        string
	Title       string
	Description string
}

// Handler returns the go-app handler that serves the application shell.
// Start must have registered the routes before it serves requests.
func Handler(cfg HandlerConfig) *app.Handler {
	// app.wasm is served from /web/app.wasm by Echo
	return &app.Handler{
		Name:        cfg.Name,
		Title:       cfg.Title,
		Description: cfg.Description,
		Styles: []string{
			"/web/webapp.css",
		},
		RawHeaders: []string{
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		},
	}
}

package engine

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drummonds/goOrders/router"
)

// go-app serves these itself from the shell handler
var shellResources = []string{
	"/app.js",
	"/app.css",
	"/app-worker.js",
	"/manifest.webmanifest",
	"/wasm_exec.js",
}

// AddRoutes registers the declared paths, the shell resources and the catch all
func (serverHandler *ServerHandler) AddRoutes() {
	e := serverHandler.Echo
	for _, path := range shellResources {
		e.GET(path, echo.WrapHandler(serverHandler.Shell))
	}
	e.Static("/web", serverHandler.ServerConfig.WebDir)

	for _, route := range serverHandler.Router.Routes() {
		e.GET(route.Path, serverHandler.ServePage)
	}
	RoutesDeclared.Set(float64(len(serverHandler.Router.Routes())))

	// Serve the page handler for all other routes (must be last)
	e.GET("/*", serverHandler.ServePage)
}

// ServePage answers a page request. Redirect entries and non canonical
// spellings get a 302 to the resolved path, declared pages get the app shell
// and anything else gets the shell with a 404 so the client shows its not
// found page.
func (serverHandler *ServerHandler) ServePage(context echo.Context) error {
	request := context.Request()
	location := request.URL.Path
	if request.URL.RawQuery != "" {
		location += "?" + request.URL.RawQuery
	}

	match, err := serverHandler.Router.Resolve(location)
	switch {
	case errors.Is(err, router.ErrNotFound):
		Logger.Info("No route for page request", "location", location)
		ShellRequestsTotal.WithLabelValues(routeLabel("", ""), OutcomeNotFound).Inc()
		return serverHandler.serveShell(context, http.StatusNotFound)
	case err != nil:
		Logger.Error("Unable to resolve page request", "location", location, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "unable to resolve route")
	}

	label := routeLabel(match.Route.Name, match.Route.Path)
	if match.Path != location {
		Logger.Debug("Redirecting page request", "from", location, "to", match.Path)
		ShellRequestsTotal.WithLabelValues(label, OutcomeRedirect).Inc()
		return context.Redirect(http.StatusFound, match.Path)
	}
	ShellRequestsTotal.WithLabelValues(label, OutcomeServed).Inc()
	return serverHandler.serveShell(context, http.StatusOK)
}

func (serverHandler *ServerHandler) serveShell(context echo.Context, status int) error {
	writer := &statusWriter{ResponseWriter: context.Response(), status: status}
	serverHandler.Shell.ServeHTTP(writer, context.Request())
	return nil
}

// statusWriter replaces whatever status the shell writes
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(w.status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(w.status)
	}
	return w.ResponseWriter.Write(b)
}

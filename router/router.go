package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Logger is global since we will need it everywhere
var Logger = slog.Default()

var (
	ErrNotFound        = errors.New("route not found")
	ErrUnknownName     = errors.New("unknown route name")
	ErrDuplicatePath   = errors.New("duplicate route path")
	ErrDuplicateName   = errors.New("duplicate route name")
	ErrInvalidRoute    = errors.New("invalid route")
	ErrUnknownRedirect = errors.New("redirect target is not a declared path")
	ErrRedirectLoop    = errors.New("redirect loop")
)

// Route binds a path either to a page component or to another path
type Route struct {
	Path      string
	Name      string
	Component func() app.Composer
	Redirect  string
}

// IsRedirect reports whether the route substitutes another path
func (r Route) IsRedirect() bool {
	return r.Redirect != ""
}

// Match is the outcome of resolving a requested location
type Match struct {
	Route          Route
	Path           string // resolved location, query and fragment kept
	RedirectedFrom string
	Found          bool
}

// Router holds the immutable route table and the navigation history
type Router struct {
	mode    HistoryMode
	routes  []Route
	byPath  map[string]int
	byName  map[string]int
	history *history
}

// New validates the route table and builds a router for the given history mode.
// Duplicate paths or names are rejected, as are redirects to undeclared paths
// and redirect cycles.
func New(mode HistoryMode, routes []Route) (*Router, error) {
	r := &Router{
		mode:    mode,
		routes:  make([]Route, len(routes)),
		byPath:  make(map[string]int, len(routes)),
		byName:  make(map[string]int, len(routes)),
		history: newHistory(),
	}
	copy(r.routes, routes)

	for i, route := range r.routes {
		if err := validate(route); err != nil {
			return nil, err
		}
		key := matchKey(route.Path)
		if j, ok := r.byPath[key]; ok {
			return nil, fmt.Errorf("%w: %q (entries %d and %d)", ErrDuplicatePath, route.Path, j, i)
		}
		r.byPath[key] = i
		if route.Name == "" {
			continue
		}
		if j, ok := r.byName[route.Name]; ok {
			return nil, fmt.Errorf("%w: %q (entries %d and %d)", ErrDuplicateName, route.Name, j, i)
		}
		r.byName[route.Name] = i
	}

	for _, route := range r.routes {
		if !route.IsRedirect() {
			continue
		}
		if _, ok := r.byPath[matchKey(route.Redirect)]; !ok {
			return nil, fmt.Errorf("%w: %q -> %q", ErrUnknownRedirect, route.Path, route.Redirect)
		}
		if _, err := r.Resolve(route.Path); err != nil {
			return nil, err
		}
	}

	Logger.Debug("Router built", "mode", mode.String(), "routes", len(r.routes))
	return r, nil
}

func validate(route Route) error {
	if !strings.HasPrefix(route.Path, "/") {
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidRoute, route.Path)
	}
	hasComponent := route.Component != nil
	if hasComponent == route.IsRedirect() {
		return fmt.Errorf("%w: %q needs exactly one of component or redirect", ErrInvalidRoute, route.Path)
	}
	if route.IsRedirect() && !strings.HasPrefix(route.Redirect, "/") {
		return fmt.Errorf("%w: redirect %q must start with /", ErrInvalidRoute, route.Redirect)
	}
	return nil
}

// Resolve matches a requested location against the table, following redirects.
// An undeclared path returns a Match with Found false and ErrNotFound.
func (r *Router) Resolve(location string) (Match, error) {
	path, suffix := splitLocation(location)
	match := Match{Path: location}

	// one hop per entry is the longest acyclic chain
	for hops := 0; hops <= len(r.routes); hops++ {
		i, ok := r.byPath[matchKey(path)]
		if !ok {
			return match, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		route := r.routes[i]
		if !route.IsRedirect() {
			match.Route = route
			match.Path = route.Path + suffix
			match.Found = true
			return match, nil
		}
		if match.RedirectedFrom == "" {
			match.RedirectedFrom = route.Path
		}
		path = route.Redirect
	}
	return match, fmt.Errorf("%w: starting at %q", ErrRedirectLoop, location)
}

// ResolveName resolves a named route as if its path had been requested
func (r *Router) ResolveName(name string) (Match, error) {
	path, err := r.PathFor(name)
	if err != nil {
		return Match{}, err
	}
	return r.Resolve(path)
}

// PathFor returns the path declared for a route name
func (r *Router) PathFor(name string) (string, error) {
	i, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return r.routes[i].Path, nil
}

// Push resolves a location and, in MemoryHistory, records it in the history.
// Not found locations are recorded as requested so the address still shows
// them. In WebHistory the browser owns the history and Push only resolves.
func (r *Router) Push(location string) (Match, error) {
	match, err := r.Resolve(location)
	if r.mode != MemoryHistory {
		return match, err
	}
	switch {
	case err == nil:
		r.history.push(match.Path)
	case errors.Is(err, ErrNotFound):
		r.history.push(location)
	default:
		return match, err
	}
	Logger.Debug("Navigated", "requested", location, "location", r.history.current(), "found", match.Found)
	return match, err
}

// Back steps back one history entry
func (r *Router) Back() (string, bool) {
	return r.history.back()
}

// Location returns the current history entry, empty before any navigation
// and always empty in WebHistory
func (r *Router) Location() string {
	return r.history.current()
}

func (r *Router) Mode() HistoryMode {
	return r.mode
}

// Routes returns a copy of the route table in declaration order
func (r *Router) Routes() []Route {
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	return routes
}

// splitLocation separates the path from any query string and fragment
func splitLocation(location string) (string, string) {
	u, err := url.Parse(location)
	if err != nil || u.Path == "" {
		if i := strings.IndexAny(location, "?#"); i >= 0 {
			return location[:i], location[i:]
		}
		return location, ""
	}
	suffix := ""
	if u.RawQuery != "" {
		suffix = "?" + u.RawQuery
	}
	if u.Fragment != "" {
		suffix += "#" + u.EscapedFragment()
	}
	return u.Path, suffix
}

// matchKey folds case and drops one trailing slash so /Login/ matches /login
func matchKey(path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return strings.ToLower(path)
}

// maxHistory bounds the entries kept, the oldest are dropped first
const maxHistory = 100

type history struct {
	mu      sync.RWMutex
	entries []string
}

func newHistory() *history {
	return &history{}
}

func (h *history) push(location string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n := len(h.entries); n > 0 && h.entries[n-1] == location {
		return
	}
	h.entries = append(h.entries, location)
	if len(h.entries) > maxHistory {
		h.entries = h.entries[len(h.entries)-maxHistory:]
	}
}

func (h *history) back() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) < 2 {
		return "", false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.entries[len(h.entries)-1], true
}

func (h *history) current() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

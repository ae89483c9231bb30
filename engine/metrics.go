package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes of a page request
const (
	OutcomeServed   = "served"
	OutcomeRedirect = "redirect"
	OutcomeNotFound = "not_found"
)

var (
	// ShellRequestsTotal counts page requests by route name and outcome
	ShellRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "goorders_shell_requests_total",
		Help: "Total number of page requests answered by the app shell",
	}, []string{"route", "outcome"})

	// RoutesDeclared is the size of the route table the server was built with
	RoutesDeclared = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "goorders_routes_declared",
		Help: "Number of entries in the route table",
	})
)

// routeLabel names a route for metrics, unnamed routes use their path
func routeLabel(name, path string) string {
	if name != "" {
		return name
	}
	if path == "" {
		return "unknown"
	}
	return path
}

package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/drummonds/goOrders/router"
)

// Route names used for programmatic navigation
const (
	RouteLogin        = "Login"
	RouteHome         = "Home"
	RouteOrders       = "OrdersPage"
	RouteOrdersReport = "OrdersReportPage"
)

// Routes returns the application route table. Entries are only ever appended.
func Routes() []router.Route {
	return []router.Route{
		{Path: "/", Redirect: "/login"},
		{Path: "/login", Name: RouteLogin, Component: func() app.Composer { return &LoginPage{} }},
		{Path: "/home", Name: RouteHome, Component: func() app.Composer { return &HomePage{} }},
		{Path: "/orders", Name: RouteOrders, Component: func() app.Composer { return &OrdersPage{} }},
		{Path: "/orders_report", Name: RouteOrdersReport, Component: func() app.Composer { return &OrdersReportPage{} }},
	}
}

// NewRouter builds the router over the application route table
func NewRouter(mode router.HistoryMode) (*router.Router, error) {
	return router.New(mode, Routes())
}

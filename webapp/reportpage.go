package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

var reportStatuses = []string{"Pending", "Shipped", "Delivered", "Cancelled"}

// OrdersReportPage summarises orders by status
type OrdersReportPage struct {
	app.Compo
	routed
}

// Render renders the orders report
func (r *OrdersReportPage) Render() app.UI {
	return app.Div().
		Class("orders-report-page").
		Body(
			app.Div().Class("page-header").Body(
				app.H2().Text("Orders report"),
				app.A().
					Href(r.href(RouteOrders)).
					Class("page-action").
					Body(app.Text("Back to orders")),
			),
			app.Div().Class("report-grid").Body(
				app.Range(reportStatuses).Slice(func(i int) app.UI {
					return app.Div().Class("report-card").Body(
						app.H3().Text(reportStatuses[i]),
						app.P().Class("report-count").Text("0"),
					)
				}),
			),
		)
}

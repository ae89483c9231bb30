package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

var orderColumns = []string{"Order", "Customer", "Placed", "Status", "Total"}

// OrdersPage lists orders
type OrdersPage struct {
	app.Compo
	routed
}

// Render renders the orders listing
func (o *OrdersPage) Render() app.UI {
	return app.Div().
		Class("orders-page").
		Body(
			app.Div().Class("page-header").Body(
				app.H2().Text("Orders"),
				app.A().
					Href(o.href(RouteOrdersReport)).
					Class("page-action").
					Body(app.Text("View report")),
			),
			app.Table().Class("orders-table").Body(
				app.THead().Body(
					app.Tr().Body(
						app.Range(orderColumns).Slice(func(i int) app.UI {
							return app.Th().Text(orderColumns[i])
						}),
					),
				),
				app.TBody().Body(
					app.Tr().Class("empty").Body(
						app.Td().ColSpan(len(orderColumns)).Text("No orders to show"),
					),
				),
			),
		)
}

package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/examdesk/core"
)

var orderingParam = "ordering"

type Ordering struct {
	Orderings []core.Ordering
}

// Bind reads the orderings from the "ordering" query param, e.g. ?ordering=-created_at,title
func (ord *Ordering) Bind(ctx echo.Context) {
	if val := ctx.QueryParam(orderingParam); val != "" {
		ord.Orderings = core.ParseOrderings(val)
	}
}

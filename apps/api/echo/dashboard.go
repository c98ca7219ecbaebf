package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/examdesk/core/dashboard"
	"github.com/trezcool/examdesk/core/exam"
)

type dashboardApi struct {
	svc *dashboard.Service
}

func registerDashboardAPI(g *echo.Group, actor echo.MiddlewareFunc, svc *dashboard.Service) {
	api := dashboardApi{svc: svc}
	g.GET("/dashboard", api.retrieve, actor)
}

func (api *dashboardApi) retrieve(ctx echo.Context) error {
	usr, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	summary, err := api.svc.For(usr, exam.NowFunc())
	if err != nil {
		return errors.Wrap(err, "building dashboard")
	}
	return ctx.JSON(http.StatusOK, summary)
}

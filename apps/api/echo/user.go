package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/examdesk/core/user"
)

type userApi struct {
	users user.Repository
}

func registerUserAPI(g *echo.Group, actor echo.MiddlewareFunc, users user.Repository) {
	api := userApi{users: users}

	ug := g.Group("/users", actor, permissionMiddleware(user.PermManageUsers))
	ug.GET("", api.query)
}

func (api *userApi) query(ctx echo.Context) error {
	users, err := api.users.QueryAllUsers()
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	if users == nil {
		users = []user.User{}
	}
	return ctx.JSON(http.StatusOK, users)
}

package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/examdesk/core/user"
)

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	SwitchRequest struct {
		UserID string `json:"user_id"`
	}

	SessionResponse struct {
		User user.User      `json:"user"`
		Menu []user.Section `json:"menu"`
	}
)

type sessionApi struct {
	session *user.Session
}

func registerSessionAPI(g *echo.Group, actor echo.MiddlewareFunc, session *user.Session) {
	api := sessionApi{session: session}

	sg := g.Group("/session")
	sg.POST("/login", api.login)
	sg.POST("/logout", api.logout)
	sg.POST("/switch", api.switchRole)
	sg.GET("", api.retrieve, actor)

	g.GET("/menu", api.menu, actor)
}

// Handlers

func (api *sessionApi) retrieve(ctx echo.Context) error {
	usr, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, SessionResponse{User: usr, Menu: user.MenuFor(usr.Role)})
}

func (api *sessionApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}

	res := api.session.Login(data.Email, data.Password)
	if !res.Success {
		return ctx.JSON(http.StatusUnauthorized, res)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *sessionApi) logout(ctx echo.Context) error {
	res := api.session.Logout()
	if !res.Success {
		return errors.New(res.Error)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *sessionApi) switchRole(ctx echo.Context) error {
	var data SwitchRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SwitchRequest")
	}

	usr, err := api.session.SwitchRole(data.UserID)
	if err != nil {
		return errors.Wrap(err, "switching role")
	}
	return ctx.JSON(http.StatusOK, SessionResponse{User: usr, Menu: user.MenuFor(usr.Role)})
}

func (api *sessionApi) menu(ctx echo.Context) error {
	usr, err := getContextActor(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, user.MenuFor(usr.Role))
}

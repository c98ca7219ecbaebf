package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/examdesk/core/user"
)

var (
	contextActorKey = "actor"

	errActorNotFoundInCtx = errors.New("actor not found in echo.Context")
)

// actorMiddleware puts the session's current user in the context; requests without one are unauthorized.
func actorMiddleware(session *user.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr, ok := session.CurrentUser()
			if !ok {
				return errUnauthorized
			}
			ctx.Set(contextActorKey, usr)
			return next(ctx)
		}
	}
}

// permissionMiddleware must run after actorMiddleware.
func permissionMiddleware(perm user.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr, err := getContextActor(ctx)
			if err != nil {
				return err
			}
			if usr.Can(perm) {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}

func getContextActor(ctx echo.Context) (user.User, error) {
	if usr, ok := ctx.Get(contextActorKey).(user.User); ok {
		return usr, nil
	}
	return user.User{}, errors.Wrap(errActorNotFoundInCtx, "getting context actor")
}

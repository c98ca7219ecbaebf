package echoapi

import (
	"context"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/examdesk/core"
	"github.com/trezcool/examdesk/core/dashboard"
	"github.com/trezcool/examdesk/core/exam"
	"github.com/trezcool/examdesk/core/user"
)

type (
	Deps struct {
		Conf         *core.Config
		Logger       core.Logger
		Translator   ut.Translator
		Session      *user.Session
		Users        user.Repository
		ExamSvc      *exam.Service
		DashboardSvc *dashboard.Service
	}

	Server interface {
		http.Handler
		Start() error
		Shutdown(context.Context) error
	}

	server struct {
		deps Deps
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(deps Deps) Server {
	s := &server{
		deps: deps,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.CORS())

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.deps.Session)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	actor := actorMiddleware(s.deps.Session)

	registerSessionAPI(v1, actor, s.deps.Session)
	registerUserAPI(v1, actor, s.deps.Users)
	registerExamAPI(v1, actor, s.deps.ExamSvc)
	registerDashboardAPI(v1, actor, s.deps.DashboardSvc)
}

func (s *server) Start() error {
	return s.app.Start(s.deps.Conf.Server.Address)
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Examdesk API!")
}

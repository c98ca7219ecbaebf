package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/examdesk/core/exam"
	"github.com/trezcool/examdesk/core/user"
)

type examApi struct {
	svc *exam.Service
}

func registerExamAPI(g *echo.Group, actor echo.MiddlewareFunc, svc *exam.Service) {
	api := examApi{svc: svc}

	view := permissionMiddleware(user.PermViewExams)
	manage := permissionMiddleware(user.PermManageExams)

	eg := g.Group("/exams", actor)
	eg.GET("", api.query, view)
	eg.POST("", api.create, manage)
	eg.GET("/available", api.available, permissionMiddleware(user.PermTakeExams))

	// detail endpoints
	dg := eg.Group("/:id")
	dg.GET("", api.retrieve, view)
	dg.PUT("", api.update, manage)
	dg.DELETE("", api.destroy, manage)
	dg.POST("/duplicate", api.duplicate, manage)
	dg.GET("/questions", api.questions, view)
}

// Handlers

func (api *examApi) create(ctx echo.Context) error {
	var data exam.NewExam
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewExam")
	}
	usr, err := getContextActor(ctx)
	if err != nil {
		return err
	}

	ex, err := api.svc.Create(data, usr)
	if err != nil {
		return errors.Wrap(err, "creating exam")
	}
	return ctx.JSON(http.StatusCreated, ex)
}

func (api *examApi) query(ctx echo.Context) error {
	filter := new(exam.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []exam.Exam{})
	}
	filter.Clean()
	ordering := new(Ordering)
	ordering.Bind(ctx)

	exams, err := api.svc.Query(*filter, ordering.Orderings...)
	if err != nil {
		return errors.Wrap(err, "querying exams")
	}
	if exams == nil {
		exams = []exam.Exam{}
	}
	return ctx.JSON(http.StatusOK, exams)
}

func (api *examApi) available(ctx echo.Context) error {
	exams, err := api.svc.Available(exam.NowFunc())
	if err != nil {
		return errors.Wrap(err, "querying available exams")
	}
	if exams == nil {
		exams = []exam.StudentExam{}
	}
	return ctx.JSON(http.StatusOK, exams)
}

func (api *examApi) retrieve(ctx echo.Context) error {
	ex, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "retrieving exam")
	}
	return ctx.JSON(http.StatusOK, exam.NewStudentExam(ex, exam.NowFunc()))
}

func (api *examApi) update(ctx echo.Context) error {
	var data exam.UpdateExam
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateExam")
	}

	ex, err := api.svc.Update(ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating exam")
	}
	return ctx.JSON(http.StatusOK, ex)
}

func (api *examApi) destroy(ctx echo.Context) error {
	if err := api.svc.Remove(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting exam")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *examApi) duplicate(ctx echo.Context) error {
	ex, err := api.svc.Duplicate(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "duplicating exam")
	}
	return ctx.JSON(http.StatusCreated, ex)
}

func (api *examApi) questions(ctx echo.Context) error {
	questions, err := api.svc.Questions(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying questions")
	}
	if questions == nil {
		questions = []exam.Question{}
	}
	return ctx.JSON(http.StatusOK, questions)
}

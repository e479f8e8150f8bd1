package controller

import (
	"tryout_backend/internal/repository"
	"tryout_backend/internal/service"
	"tryout_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestSessionController struct {
	Service *service.TestSessionService
}

func NewTestSessionController(svc *service.TestSessionService) *TestSessionController {
	return &TestSessionController{Service: svc}
}

type startTestRequest struct {
	StudentID     string `json:"studentId" binding:"required"`
	SubCategoryID string `json:"subCategoryId" binding:"required"`
}

type saveAnswerRequest struct {
	QuestionID      string  `json:"questionId" binding:"required"`
	SelectedAnswer  *string `json:"selectedAnswer"`
	MarkedForReview bool    `json:"markedForReview"`
	TimeSpent       int     `json:"timeSpent"`
}

// @Summary Start a test session
// @Tags test-sessions
// @Accept json
// @Produce json
// @Param body body startTestRequest true "student and subcategory"
// @Success 201 {object} util.Response
// @Router /test-sessions/start [post]
func (c *TestSessionController) Start(ctx *gin.Context) {
	var req startTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Start(req.StudentID, req.SubCategoryID)
	if err != nil {
		switch err {
		case util.ErrStudentNotFound, util.ErrSubCategoryNotFound, util.ErrNoQuestions:
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, result)
}

// @Summary Save or change an answer in a running session
// @Tags test-sessions
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body saveAnswerRequest true "answer"
// @Success 200 {object} util.Response
// @Router /test-sessions/{id}/answer [put]
func (c *TestSessionController) SaveAnswer(ctx *gin.Context) {
	var req saveAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.Service.SaveAnswer(ctx.Param("id"), req.QuestionID, req.SelectedAnswer, req.MarkedForReview, req.TimeSpent)
	if err != nil {
		switch err {
		case util.ErrSessionNotFound, util.ErrAnswerNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrAlreadySubmitted, util.ErrTimeLimitExceeded, util.ErrInvalidAnswerKey:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, answer)
}

// @Summary Submit a test session for grading
// @Tags test-sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} util.Response
// @Router /test-sessions/{id}/submit [post]
func (c *TestSessionController) Submit(ctx *gin.Context) {
	result, err := c.Service.Submit(ctx.Param("id"))
	if err != nil {
		switch err {
		case util.ErrSessionNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrAlreadySubmitted:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// @Summary Get session state with answers
// @Tags test-sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} util.Response
// @Router /test-sessions/{id} [get]
func (c *TestSessionController) Get(ctx *gin.Context) {
	detail, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		if err == util.ErrSessionNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// @Summary Get graded results of a finished session
// @Tags test-sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} util.Response
// @Router /test-sessions/{id}/results [get]
func (c *TestSessionController) Results(ctx *gin.Context) {
	result, err := c.Service.Results(ctx.Param("id"))
	if err != nil {
		switch err {
		case util.ErrSessionNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrTestNotCompleted:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// @Summary List test sessions
// @Tags test-sessions
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "filter by status"
// @Param studentId query string false "filter by student"
// @Param subCategoryId query string false "filter by subcategory"
// @Success 200 {object} util.Response
// @Router /test-sessions [get]
func (c *TestSessionController) List(ctx *gin.Context) {
	sessions, err := c.Service.List(repository.SessionFilter{
		Status:        ctx.Query("status"),
		StudentID:     ctx.Query("studentId"),
		SubCategoryID: ctx.Query("subCategoryId"),
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}

// @Summary Test statistics overview
// @Tags test-sessions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /test-sessions/stats/overview [get]
func (c *TestSessionController) Stats(ctx *gin.Context) {
	stats, err := c.Service.Stats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

package controller

import (
	"tryout_backend/internal/service"
	"tryout_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary List questions with answer keys
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param subCategoryId query string false "filter by subcategory"
// @Success 200 {object} util.Response
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	questions, err := c.Service.List(ctx.Query("subCategoryId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Get one question with answer key
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "question id"
// @Success 200 {object} util.Response
// @Router /questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	question, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		if err == util.ErrQuestionNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// @Summary List questions for taking a test, without answer keys
// @Tags questions
// @Produce json
// @Param subCategoryId path string true "subcategory id"
// @Success 200 {object} util.Response
// @Router /questions/test/{subCategoryId} [get]
func (c *QuestionController) ListForTest(ctx *gin.Context) {
	questions, err := c.Service.ListForTest(ctx.Param("subCategoryId"))
	if err != nil {
		switch err {
		case util.ErrSubCategoryNotFound, util.ErrNoQuestions:
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, questions)
}

// @Summary Create question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuestionReq true "question"
// @Success 201 {object} util.Response
// @Router /questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.Create(req)
	if err != nil {
		switch err {
		case util.ErrSubCategoryNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrInvalidAnswerKey:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, question)
}

// @Summary Bulk create questions
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body []service.QuestionReq true "questions"
// @Success 201 {object} util.Response
// @Router /questions/bulk [post]
func (c *QuestionController) BulkCreate(ctx *gin.Context) {
	var reqs []service.QuestionReq
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.Service.BulkCreate(reqs)
	if err != nil {
		switch err {
		case util.ErrSubCategoryNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrInvalidAnswerKey, util.ErrFieldsRequired:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, questions)
}

// @Summary Update question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "question id"
// @Param body body service.QuestionUpdateReq true "fields to change"
// @Success 200 {object} util.Response
// @Router /questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	var req service.QuestionUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.Update(ctx.Param("id"), req)
	if err != nil {
		switch err {
		case util.ErrQuestionNotFound, util.ErrSubCategoryNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrInvalidAnswerKey:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, question)
}

// @Summary Delete question
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "question id"
// @Success 200 {object} util.Response
// @Router /questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id")); err != nil {
		if err == util.ErrQuestionNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Question deleted successfully"})
}

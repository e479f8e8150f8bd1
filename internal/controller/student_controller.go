package controller

import (
	"tryout_backend/internal/service"
	"tryout_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	Service *service.StudentService
}

func NewStudentController(svc *service.StudentService) *StudentController {
	return &StudentController{Service: svc}
}

// @Summary Register a student
// @Tags students
// @Accept json
// @Produce json
// @Param body body service.StudentReq true "student"
// @Success 201 {object} util.Response
// @Router /students [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req service.StudentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.Service.Register(req)
	if err != nil {
		if err == util.ErrFieldsRequired {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, student)
}

// @Summary List students
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	students, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, students)
}

// @Summary Get a student with their test history
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "student id"
// @Success 200 {object} util.Response
// @Router /students/{id} [get]
func (c *StudentController) Get(ctx *gin.Context) {
	detail, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		if err == util.ErrStudentNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "student id"
// @Param body body service.StudentReq true "student"
// @Success 200 {object} util.Response
// @Router /students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	var req service.StudentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.Service.Update(ctx.Param("id"), req)
	if err != nil {
		switch err {
		case util.ErrStudentNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrFieldsRequired:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, student)
}

// @Summary Delete student
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "student id"
// @Success 200 {object} util.Response
// @Router /students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id")); err != nil {
		if err == util.ErrStudentNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Student deleted successfully"})
}

// @Summary Student statistics overview
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /students/stats/overview [get]
func (c *StudentController) Stats(ctx *gin.Context) {
	stats, err := c.Service.Stats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

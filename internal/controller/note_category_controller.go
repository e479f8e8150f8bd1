package controller

import (
	"tryout_backend/internal/service"
	"tryout_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteCategoryController struct {
	Service *service.NoteCategoryService
}

func NewNoteCategoryController(svc *service.NoteCategoryService) *NoteCategoryController {
	return &NoteCategoryController{Service: svc}
}

// @Summary List note categories with live note counts
// @Tags note-categories
// @Produce json
// @Success 200 {object} util.Response
// @Router /note-categories [get]
func (c *NoteCategoryController) List(ctx *gin.Context) {
	categories, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// @Summary Get one note category
// @Tags note-categories
// @Produce json
// @Param id path string true "note category id"
// @Success 200 {object} util.Response
// @Router /note-categories/{id} [get]
func (c *NoteCategoryController) Get(ctx *gin.Context) {
	category, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		if err == util.ErrCategoryNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// @Summary Notes in a category, or uncategorized notes
// @Tags note-categories
// @Produce json
// @Param id path string true "note category id, or the literal uncategorized"
// @Success 200 {object} util.Response
// @Router /note-categories/{id}/notes [get]
func (c *NoteCategoryController) Notes(ctx *gin.Context) {
	notes, err := c.Service.NotesIn(ctx.Param("id"))
	if err != nil {
		if err == util.ErrCategoryNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, notes)
}

// @Summary Create note category
// @Tags note-categories
// @Accept json
// @Produce json
// @Param body body service.NoteCategoryReq true "note category"
// @Success 201 {object} util.Response
// @Router /note-categories [post]
func (c *NoteCategoryController) Create(ctx *gin.Context) {
	var req service.NoteCategoryReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.Service.Create(req)
	if err != nil {
		switch err {
		case util.ErrCategoryNameExists, util.ErrFieldsRequired:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, category)
}

// @Summary Update note category
// @Tags note-categories
// @Accept json
// @Produce json
// @Param id path string true "note category id"
// @Param body body service.NoteCategoryReq true "fields to change"
// @Success 200 {object} util.Response
// @Router /note-categories/{id} [put]
func (c *NoteCategoryController) Update(ctx *gin.Context) {
	var req service.NoteCategoryReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.Service.Update(ctx.Param("id"), req)
	if err != nil {
		switch err {
		case util.ErrCategoryNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrCategoryNameExists:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, category)
}

// @Summary Delete note category, detaching its notes
// @Tags note-categories
// @Produce json
// @Param id path string true "note category id"
// @Success 200 {object} util.Response
// @Router /note-categories/{id} [delete]
func (c *NoteCategoryController) Delete(ctx *gin.Context) {
	result, err := c.Service.Delete(ctx.Param("id"))
	if err != nil {
		if err == util.ErrCategoryNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

package controller

import (
	"tryout_backend/internal/service"
	"tryout_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Service *service.CategoryService
}

func NewCategoryController(svc *service.CategoryService) *CategoryController {
	return &CategoryController{Service: svc}
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} util.Response
// @Router /categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// @Summary Get one category
// @Tags categories
// @Produce json
// @Param id path string true "category id"
// @Success 200 {object} util.Response
// @Router /categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
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

// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CategoryReq true "category"
// @Success 201 {object} util.Response
// @Router /categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req service.CategoryReq
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

// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "category id"
// @Param body body service.CategoryReq true "category"
// @Success 200 {object} util.Response
// @Router /categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	var req service.CategoryReq
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

// @Summary Delete category
// @Tags categories
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "category id"
// @Success 200 {object} util.Response
// @Router /categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id")); err != nil {
		switch err {
		case util.ErrCategoryNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrCategoryHasChildren:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"message": "Category deleted successfully"})
}

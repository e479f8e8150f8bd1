package controller

import (
	"tryout_backend/internal/service"
	"tryout_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubCategoryController struct {
	Service *service.SubCategoryService
}

func NewSubCategoryController(svc *service.SubCategoryService) *SubCategoryController {
	return &SubCategoryController{Service: svc}
}

// @Summary List active subcategories
// @Tags subcategories
// @Produce json
// @Param categoryId query string false "filter by parent category"
// @Success 200 {object} util.Response
// @Router /subcategories [get]
func (c *SubCategoryController) List(ctx *gin.Context) {
	subCategories, err := c.Service.List(ctx.Query("categoryId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subCategories)
}

// @Summary Get one subcategory
// @Tags subcategories
// @Produce json
// @Param id path string true "subcategory id"
// @Success 200 {object} util.Response
// @Router /subcategories/{id} [get]
func (c *SubCategoryController) Get(ctx *gin.Context) {
	subCategory, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		if err == util.ErrSubCategoryNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subCategory)
}

// @Summary Create subcategory
// @Tags subcategories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SubCategoryReq true "subcategory"
// @Success 201 {object} util.Response
// @Router /subcategories [post]
func (c *SubCategoryController) Create(ctx *gin.Context) {
	var req service.SubCategoryReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subCategory, err := c.Service.Create(req)
	if err != nil {
		switch err {
		case util.ErrCategoryNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrFieldsRequired:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, subCategory)
}

// @Summary Update subcategory
// @Tags subcategories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "subcategory id"
// @Param body body service.SubCategoryReq true "subcategory"
// @Success 200 {object} util.Response
// @Router /subcategories/{id} [put]
func (c *SubCategoryController) Update(ctx *gin.Context) {
	var req service.SubCategoryReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subCategory, err := c.Service.Update(ctx.Param("id"), req)
	if err != nil {
		switch err {
		case util.ErrSubCategoryNotFound, util.ErrCategoryNotFound:
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, subCategory)
}

// @Summary Delete subcategory
// @Tags subcategories
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "subcategory id"
// @Success 200 {object} util.Response
// @Router /subcategories/{id} [delete]
func (c *SubCategoryController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id")); err != nil {
		switch err {
		case util.ErrSubCategoryNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrSubCategoryHasChilds:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"message": "Subcategory deleted successfully"})
}

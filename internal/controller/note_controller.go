package controller

import (
	"tryout_backend/internal/service"
	"tryout_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	Service *service.NoteService
}

func NewNoteController(svc *service.NoteService) *NoteController {
	return &NoteController{Service: svc}
}

// @Summary List notes
// @Tags notes
// @Produce json
// @Success 200 {object} util.Response
// @Router /notes [get]
func (c *NoteController) List(ctx *gin.Context) {
	notes, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, notes)
}

// @Summary Get one note
// @Tags notes
// @Produce json
// @Param id path string true "note id"
// @Success 200 {object} util.Response
// @Router /notes/{id} [get]
func (c *NoteController) Get(ctx *gin.Context) {
	note, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		if err == util.ErrNoteNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, note)
}

// @Summary Create note
// @Tags notes
// @Accept json
// @Produce json
// @Param body body service.NoteReq true "note"
// @Success 201 {object} util.Response
// @Router /notes [post]
func (c *NoteController) Create(ctx *gin.Context) {
	var req service.NoteReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.Service.Create(req)
	if err != nil {
		switch err {
		case util.ErrFieldsRequired, util.ErrInvalidCategory:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, note)
}

// @Summary Update note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "note id"
// @Param body body service.NoteReq true "fields to change"
// @Success 200 {object} util.Response
// @Router /notes/{id} [put]
func (c *NoteController) Update(ctx *gin.Context) {
	var req service.NoteReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.Service.Update(ctx.Param("id"), req)
	if err != nil {
		switch err {
		case util.ErrNoteNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrInvalidCategory:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, note)
}

// @Summary Delete note
// @Tags notes
// @Produce json
// @Param id path string true "note id"
// @Success 200 {object} util.Response
// @Router /notes/{id} [delete]
func (c *NoteController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id")); err != nil {
		if err == util.ErrNoteNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Note deleted successfully"})
}

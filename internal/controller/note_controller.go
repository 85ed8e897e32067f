package controller

import (
	"errors"

	"campus_hub_backend/internal/model"
	"campus_hub_backend/internal/service"
	"campus_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	service *service.NoteService
}

func NewNoteController(s *service.NoteService) *NoteController {
	return &NoteController{service: s}
}

type createNoteRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// ListNotes godoc
// @Summary 获取我的全部笔记
// @Tags 笔记
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Note}
// @Router /api/notes [get]
func (c *NoteController) ListNotes(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.ListNotes(user.UserID))
}

// CreateNote godoc
// @Summary 新建笔记
// @Description 服务端分配 id 与时间戳，并同步刷新 notesCount 统计
// @Tags 笔记
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body createNoteRequest true "笔记内容"
// @Success 201 {object} util.Response{data=model.Note}
// @Router /api/notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req createNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note := c.service.CreateNote(user.UserID, model.Note{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
	})
	util.Created(ctx, note)
}

// UpdateNote godoc
// @Summary 部分更新笔记
// @Tags 笔记
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "笔记ID"
// @Param body body map[string]interface{} true "补丁字段"
// @Success 200 {object} util.Response{data=model.Note}
// @Failure 404 {object} util.Response
// @Router /api/notes/{id} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var patch map[string]interface{}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.service.UpdateNote(user.UserID, ctx.Param("id"), patch)
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, note)
}

// DeleteNote godoc
// @Summary 删除笔记
// @Tags 笔记
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "笔记ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.service.DeleteNote(user.UserID, ctx.Param("id")); err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, nil)
}

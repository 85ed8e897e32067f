package controller

import (
	"campus_hub_backend/internal/model"
	"campus_hub_backend/internal/service"
	"campus_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	service *service.ChatService
}

func NewChatController(s *service.ChatService) *ChatController {
	return &ChatController{service: s}
}

type sendMessageRequest struct {
	Sender   string            `json:"sender" binding:"required"`
	Content  string            `json:"content" binding:"required"`
	Metadata map[string]string `json:"metadata"`
}

// ListMessages godoc
// @Summary 获取聊天记录
// @Tags 聊天
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ChatMessage}
// @Router /api/chat/messages [get]
func (c *ChatController) ListMessages(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.ListMessages(user.UserID))
}

// SendMessage godoc
// @Summary 追加一条聊天消息
// @Tags 聊天
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body sendMessageRequest true "消息"
// @Success 201 {object} util.Response{data=model.ChatMessage}
// @Router /api/chat/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req sendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	msg := c.service.SendMessage(user.UserID, model.ChatMessage{
		Sender:   req.Sender,
		Content:  req.Content,
		Metadata: req.Metadata,
	})
	util.Created(ctx, msg)
}

// ClearMessages godoc
// @Summary 清空聊天记录
// @Tags 聊天
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/chat/messages [delete]
func (c *ChatController) ClearMessages(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	c.service.ClearMessages(user.UserID)
	util.Success(ctx, nil)
}

type notifyRequest struct {
	Title     string `json:"title" binding:"required"`
	Message   string `json:"message"`
	ActionURL string `json:"actionUrl"`
}

// ListNotifications godoc
// @Summary 获取通知列表（最新在前，最多 50 条）
// @Tags 通知
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.NotificationItem}
// @Router /api/notifications [get]
func (c *ChatController) ListNotifications(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.ListNotifications(user.UserID))
}

// Notify godoc
// @Summary 新增一条通知
// @Tags 通知
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body notifyRequest true "通知内容"
// @Success 201 {object} util.Response{data=model.NotificationItem}
// @Router /api/notifications [post]
func (c *ChatController) Notify(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req notifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	n := c.service.Notify(user.UserID, model.NotificationItem{
		Title:     req.Title,
		Message:   req.Message,
		ActionURL: req.ActionURL,
	})
	util.Created(ctx, n)
}

// MarkNotificationRead godoc
// @Summary 标记通知已读
// @Tags 通知
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "通知ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/notifications/{id}/read [patch]
func (c *ChatController) MarkNotificationRead(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.service.MarkNotificationRead(user.UserID, ctx.Param("id")); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

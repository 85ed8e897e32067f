package controller

import (
	"campus_hub_backend/internal/service"
	"campus_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *service.UserDataService
}

func NewUserController(s *service.UserDataService) *UserController {
	return &UserController{service: s}
}

// GetProfile godoc
// @Summary 获取我的档案
// @Tags 用户档案
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Router /api/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.GetProfile(user.UserID))
}

// UpdateProfile godoc
// @Summary 部分更新我的档案
// @Description 浅合并补丁，未出现的字段保持不变，updatedAt 自动刷新
// @Tags 用户档案
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body map[string]interface{} true "补丁字段"
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
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

	util.Success(ctx, c.service.UpdateProfile(user.UserID, patch))
}

// GetSettings godoc
// @Summary 获取偏好设置
// @Tags 用户档案
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.UserSettings}
// @Router /api/settings [get]
func (c *UserController) GetSettings(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.GetSettings(user.UserID))
}

// UpdateSettings godoc
// @Summary 部分更新偏好设置
// @Tags 用户档案
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body map[string]interface{} true "补丁字段"
// @Success 200 {object} util.Response{data=model.UserSettings}
// @Router /api/settings [put]
func (c *UserController) UpdateSettings(ctx *gin.Context) {
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

	util.Success(ctx, c.service.UpdateSettings(user.UserID, patch))
}

// GetOnboarding godoc
// @Summary 获取新手引导进度
// @Tags 用户档案
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Onboarding}
// @Router /api/onboarding [get]
func (c *UserController) GetOnboarding(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.GetOnboarding(user.UserID))
}

// UpdateOnboarding godoc
// @Summary 部分更新新手引导进度
// @Tags 用户档案
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body map[string]interface{} true "补丁字段"
// @Success 200 {object} util.Response{data=model.Onboarding}
// @Router /api/onboarding [put]
func (c *UserController) UpdateOnboarding(ctx *gin.Context) {
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

	util.Success(ctx, c.service.UpdateOnboarding(user.UserID, patch))
}

// GetStatistics godoc
// @Summary 获取使用统计
// @Tags 用户档案
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.UserStatistics}
// @Router /api/statistics [get]
func (c *UserController) GetStatistics(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.GetStatistics(user.UserID))
}

// RecordLogin godoc
// @Summary 记录一次登录
// @Tags 用户档案
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.UserStatistics}
// @Router /api/statistics/login [post]
func (c *UserController) RecordLogin(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.RecordLogin(user.UserID))
}

type addStudyTimeRequest struct {
	Minutes int `json:"minutes" binding:"required,min=1"`
}

// AddStudyTime godoc
// @Summary 累加学习时长
// @Tags 用户档案
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body addStudyTimeRequest true "时长（分钟）"
// @Success 200 {object} util.Response{data=model.UserStatistics}
// @Router /api/statistics/study-time [post]
func (c *UserController) AddStudyTime(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req addStudyTimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.service.AddStudyTime(user.UserID, req.Minutes))
}

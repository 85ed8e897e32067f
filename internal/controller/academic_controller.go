package controller

import (
	"campus_hub_backend/internal/model"
	"campus_hub_backend/internal/service"
	"campus_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AcademicController struct {
	service *service.AcademicService
}

func NewAcademicController(s *service.AcademicService) *AcademicController {
	return &AcademicController{service: s}
}

// GetGraduationInfo godoc
// @Summary 获取毕业学分汇总
// @Tags 学业
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.GraduationInfo}
// @Router /api/graduation [get]
func (c *AcademicController) GetGraduationInfo(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.GetGraduationInfo(user.UserID))
}

// UpdateGraduationInfo godoc
// @Summary 部分更新毕业学分汇总
// @Description 学分汇总由前端根据已修课程计算后写回，存储层不自动重算
// @Tags 学业
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body map[string]interface{} true "补丁字段"
// @Success 200 {object} util.Response{data=model.GraduationInfo}
// @Router /api/graduation [put]
func (c *AcademicController) UpdateGraduationInfo(ctx *gin.Context) {
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

	util.Success(ctx, c.service.UpdateGraduationInfo(user.UserID, patch))
}

// GetCurriculum godoc
// @Summary 获取培养方案
// @Tags 学业
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Curriculum}
// @Router /api/curriculum [get]
func (c *AcademicController) GetCurriculum(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.GetCurriculum(user.UserID))
}

// UpdateCurriculum godoc
// @Summary 部分更新培养方案
// @Tags 学业
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body map[string]interface{} true "补丁字段"
// @Success 200 {object} util.Response{data=model.Curriculum}
// @Router /api/curriculum [put]
func (c *AcademicController) UpdateCurriculum(ctx *gin.Context) {
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

	util.Success(ctx, c.service.UpdateCurriculum(user.UserID, patch))
}

// GetSchedule godoc
// @Summary 获取当前学期课程表
// @Tags 学业
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Schedule}
// @Router /api/schedule [get]
func (c *AcademicController) GetSchedule(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.GetSchedule(user.UserID))
}

// UpdateSchedule godoc
// @Summary 部分更新课程表
// @Tags 学业
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body map[string]interface{} true "补丁字段"
// @Success 200 {object} util.Response{data=model.Schedule}
// @Router /api/schedule [put]
func (c *AcademicController) UpdateSchedule(ctx *gin.Context) {
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

	util.Success(ctx, c.service.UpdateSchedule(user.UserID, patch))
}

// GetGraduationRequirements godoc
// @Summary 获取毕业要求列表
// @Tags 学业
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.GraduationRequirement}
// @Router /api/graduation/requirements [get]
func (c *AcademicController) GetGraduationRequirements(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.GetGraduationRequirements(user.UserID))
}

// SaveGraduationRequirements godoc
// @Summary 整体覆盖毕业要求列表
// @Tags 学业
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body []model.GraduationRequirement true "毕业要求"
// @Success 200 {object} util.Response{data=[]model.GraduationRequirement}
// @Router /api/graduation/requirements [put]
func (c *AcademicController) SaveGraduationRequirements(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var reqs []model.GraduationRequirement
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.service.SaveGraduationRequirements(user.UserID, reqs))
}

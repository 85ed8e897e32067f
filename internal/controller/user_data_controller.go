package controller

import (
	"errors"
	"io"
	"net/http"

	"campus_hub_backend/internal/service"
	"campus_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserDataController 整用户生命周期：初始化、删除、导出、导入
type UserDataController struct {
	userData *service.UserDataService
	backup   *service.BackupService
}

func NewUserDataController(userData *service.UserDataService, backup *service.BackupService) *UserDataController {
	return &UserDataController{userData: userData, backup: backup}
}

// Initialize godoc
// @Summary 初始化用户数据（全部实体写默认值，幂等）
// @Tags 用户数据
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/user-data/initialize [post]
func (c *UserDataController) Initialize(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	c.userData.Initialize(user.UserID)
	util.Success(ctx, nil)
}

// Delete godoc
// @Summary 删除用户全部数据
// @Tags 用户数据
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/user-data [delete]
func (c *UserDataController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	c.userData.Delete(user.UserID)
	util.Success(ctx, nil)
}

// Export godoc
// @Summary 导出用户全部数据为单个 JSON 文档
// @Description backup=1 时同时推送到备份存储并返回备份地址
// @Tags 用户数据
// @Produce json
// @Security ApiKeyAuth
// @Param backup query string false "是否推送备份存储" Enums(0, 1)
// @Success 200 {object} util.Response
// @Router /api/user-data/export [get]
func (c *UserDataController) Export(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if ctx.Query("backup") == "1" {
		url, err := c.backup.ExportToStorage(ctx.Request.Context(), user.UserID)
		if err != nil {
			if errors.Is(err, util.ErrBackupNotConfigured) {
				util.BadRequest(ctx, err.Error())
				return
			}
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, gin.H{"backupUrl": url})
		return
	}

	blob := c.backup.Export(user.UserID)
	ctx.Header("Content-Disposition", `attachment; filename="user-data.json"`)
	ctx.Data(http.StatusOK, "application/json", blob)
}

// Import godoc
// @Summary 导入用户数据文档
// @Description 全有或全无：文档解析失败不落任何写入；每条记录的 userId 强制盖成当前用户
// @Tags 用户数据
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/user-data/import [post]
func (c *UserDataController) Import(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	blob, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.backup.Import(user.UserID, blob); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, nil)
}

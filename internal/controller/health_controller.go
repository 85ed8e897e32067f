package controller

import (
	"net/http"

	"campus_hub_backend/internal/store"
	"campus_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Backend store.Backend
}

func NewHealthController(backend store.Backend) *HealthController {
	return &HealthController{Backend: backend}
}

// @Summary 健康检查
// @Description 检查服务与存储后端状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// 探测存储后端可读
	if _, _, err := c.Backend.Get("health:probe"); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Storage backend unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"store": "up",
		},
	})
}

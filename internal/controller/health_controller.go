package controller

import (
	"net/http"
	"time"

	"smart_survey_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	util.Success(ctx, "", gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
		},
	})
}

// @Summary 接口连通性测试
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /test [get]
func (c *HealthController) Ping(ctx *gin.Context) {
	util.Success(ctx, "¡API de SmartPT funcionando correctamente!", gin.H{
		"version":   "1.0.0",
		"timestamp": time.Now(),
	})
}

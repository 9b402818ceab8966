package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/gpx-pace-backend/internal/config"
	"github.com/jengzang/gpx-pace-backend/internal/handler"
	"github.com/jengzang/gpx-pace-backend/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, paceHandler *handler.PaceHandler, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	// 限制 multipart 表单在内存中的大小，超出部分写入临时文件
	if cfg.MaxUploadBytes > 0 && cfg.MaxUploadBytes < r.MaxMultipartMemory {
		r.MaxMultipartMemory = cfg.MaxUploadBytes
	}

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "GPX pace API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	{
		// 配速计算接口
		pace := api.Group("/pace")
		{
			pace.POST("", middleware.RateLimit(limiter), middleware.BodyLimit(cfg.MaxUploadBytes), paceHandler.ComputePace)
			pace.GET("/history", middleware.JWTAuth(cfg.JWTSecret), paceHandler.GetHistory)
		}
	}

	return r
}

package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/gpx-pace-backend/internal/api"
	"github.com/jengzang/gpx-pace-backend/internal/config"
	"github.com/jengzang/gpx-pace-backend/internal/database"
	"github.com/jengzang/gpx-pace-backend/internal/handler"
	"github.com/jengzang/gpx-pace-backend/internal/middleware"
	"github.com/jengzang/gpx-pace-backend/internal/repository"
	"github.com/jengzang/gpx-pace-backend/internal/service"
	"github.com/jengzang/gpx-pace-backend/internal/storage"
)

func main() {
	rollback := flag.Bool("rollback", false, "roll back the latest schema migration and exit")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config:", err)
	}
	if cfg.UsesDefaultSecret() {
		log.Printf("WARNING: JWT_SECRET is the public default, history tokens can be forged")
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化数据库
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	if err := migrateSchema(db, *rollback); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	if *rollback {
		log.Printf("Rolled back latest migration on %s", cfg.DBPath)
		return
	}

	// 上传暂存目录
	stager, err := storage.NewStager(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatal("Failed to prepare upload directory:", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer limiter.Stop()

	paceService := service.NewPaceService(stager, repository.NewQueryRepository(db))

	// 初始化路由
	router := api.SetupRouter(cfg, handler.NewPaceHandler(paceService), limiter)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

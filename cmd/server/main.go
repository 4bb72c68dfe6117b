package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/fitness-challenge-backend/api"
	"github.com/SlpAus/fitness-challenge-backend/internal/platform/backup"
	"github.com/SlpAus/fitness-challenge-backend/internal/platform/config"
	"github.com/SlpAus/fitness-challenge-backend/internal/platform/database"
	"github.com/SlpAus/fitness-challenge-backend/internal/platform/health"
	"github.com/SlpAus/fitness-challenge-backend/internal/platform/shutdown"
	"github.com/SlpAus/fitness-challenge-backend/internal/platform/startup"
	"github.com/SlpAus/fitness-challenge-backend/pkg/lifecycle"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("无法加载配置: %v", err))
	}
	gin.SetMode(cfg.Server.Mode)

	database.InitDB(cfg.Database.Sqlite)
	database.InitRedis(cfg.Database.Redis)

	// 1. 阻塞式获取初始Run ID
	health.InitializeRunID()

	// 2. 执行应用首次启动初始化流程
	if err := startup.InitializeApplication(cfg); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 3. 阻塞式执行一次启动后健康检查
	fmt.Println("正在执行启动后健康检查...")
	health.PerformCheck()

	// 4. 异步启动后台的持续健康检查器
	go health.StartRedisHealthCheck()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	// 5. 创建生命周期管理器并启动后台的榜单快照调度器
	gracefulMgr := lifecycle.NewManager()
	forcefulMgr := lifecycle.NewManager()
	backupHandle, err := gracefulMgr.NewServiceHandle("standings-snapshot")
	if err != nil {
		panic(fmt.Sprintf("无法注册快照调度器: %v", err))
	}
	go backup.StartBackupScheduler(backupHandle)

	// 6. 启动HTTP服务器并等待停机信号
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}
	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(gracefulMgr, forcefulMgr)
	coordinator.ListenForSignalsAndShutdown(server)
}

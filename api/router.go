package api

import (
	"github.com/SlpAus/fitness-challenge-backend/internal/dailylog"
	"github.com/SlpAus/fitness-challenge-backend/internal/leaderboard"
	"github.com/SlpAus/fitness-challenge-backend/internal/summary"
	"github.com/SlpAus/fitness-challenge-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// 用户相关的路由组 /api/users
		userRoutes := api.Group("/users")
		{
			userRoutes.GET("/me", user.EnsureUserCookieMiddleware(), user.GetMe)
			userRoutes.POST("/me", user.LoadUserMiddleware(), user.UpsertMe)
		}

		// 打卡相关的路由组 /api/logs
		logRoutes := api.Group("/logs", user.LoadUserMiddleware(), user.RequireActivatedUser())
		{
			logRoutes.POST("", dailylog.HandleSubmitLog)
			logRoutes.GET("", dailylog.HandleGetLogs)
			logRoutes.GET("/today", dailylog.HandleGetToday)
		}

		// 汇总相关的路由组 /api/summary
		summaryRoutes := api.Group("/summary", user.LoadUserMiddleware(), user.RequireActivatedUser())
		{
			summaryRoutes.GET("/weekly", summary.HandleGetWeekly)
			summaryRoutes.GET("/charts", summary.HandleGetCharts)
		}

		// 排行榜相关的路由组 /api/leaderboard
		leaderboardRoutes := api.Group("/leaderboard")
		{
			leaderboardRoutes.GET("", leaderboard.HandleGetLeaderboard)
			leaderboardRoutes.GET("/history", leaderboard.HandleGetHistory)
		}
	}
}

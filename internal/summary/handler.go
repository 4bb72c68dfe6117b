package summary

import (
	"net/http"

	"github.com/SlpAus/fitness-challenge-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// HandleGetWeekly 返回当前用户本周（周日到周六）的积分汇总。
func HandleGetWeekly(c *gin.Context) {
	userID := c.GetString(user.UserIDKey)

	weekly, err := GetWeeklySummaryForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取周积分汇总失败"})
		return
	}
	c.JSON(http.StatusOK, weekly)
}

// HandleGetCharts 返回当前用户仪表盘所需的图表数据。
func HandleGetCharts(c *gin.Context) {
	userID := c.GetString(user.UserIDKey)

	charts, err := GetChartsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取图表数据失败"})
		return
	}
	c.JSON(http.StatusOK, charts)
}

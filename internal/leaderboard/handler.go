package leaderboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/SlpAus/fitness-challenge-backend/internal/platform/database"
	"github.com/gin-gonic/gin"
)

// --- API 响应模型 ---

type RankedEntryResponse struct {
	Rank     int    `json:"rank"`
	UID      string `json:"uid"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Points   int    `json:"points"`
	Streak   int    `json:"streak"`
}

type SnapshotResponse struct {
	TakenAt   time.Time             `json:"takenAt"`
	Rubric    string                `json:"rubric"`
	Standings []RankedEntryResponse `json:"standings"`
}

const defaultHistoryLimit = 20

// --- 控制器函数 ---

// HandleGetLeaderboard 获取按总积分降序的排行榜
func HandleGetLeaderboard(c *gin.Context) {
	if !database.IsRedisHealthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "服务暂时不可用，请稍后重试"})
		return
	}

	ranked, err := GetRankedEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取排行榜数据失败"})
		return
	}

	responses := make([]RankedEntryResponse, 0, len(ranked))
	for i, dto := range ranked {
		responses = append(responses, RankedEntryResponse{
			Rank:     i + 1,
			UID:      dto.UserUUID,
			Name:     dto.Entry.Name,
			PhotoURL: dto.Entry.PhotoURL,
			Points:   dto.Entry.Points,
			Streak:   dto.Entry.Streak,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// HandleGetHistory 获取历史榜单快照
func HandleGetHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit参数无效"})
			return
		}
		limit = parsed
	}

	snapshots, err := GetSnapshotHistory(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取历史榜单失败"})
		return
	}

	responses := make([]SnapshotResponse, 0, len(snapshots))
	for _, s := range snapshots {
		var standings []Entry
		_ = json.Unmarshal(s.Standings, &standings)

		entries := make([]RankedEntryResponse, 0, len(standings))
		for i, e := range standings {
			entries = append(entries, RankedEntryResponse{
				Rank:     i + 1,
				UID:      e.UserUUID,
				Name:     e.DisplayName,
				PhotoURL: e.PhotoURL,
				Points:   e.TotalPoints,
				Streak:   e.Streak,
			})
		}
		responses = append(responses, SnapshotResponse{
			TakenAt:   s.TakenAt,
			Rubric:    s.Rubric,
			Standings: entries,
		})
	}
	c.JSON(http.StatusOK, responses)
}

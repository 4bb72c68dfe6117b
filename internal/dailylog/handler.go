package dailylog

import (
	"net/http"
	"time"

	"github.com/SlpAus/fitness-challenge-backend/internal/score"
	"github.com/SlpAus/fitness-challenge-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// --- API 请求/响应模型 ---

// SubmitLogRequest 与历史前端的提交格式保持一致：
// 数字字段以字符串传输，服务端负责规范化。
type SubmitLogRequest struct {
	Date         string `json:"date"`
	Steps        string `json:"steps"`
	WaterIntake  string `json:"waterIntake"`
	SleepHours   string `json:"sleepHours"`
	NoAddedSugar bool   `json:"noAddedSugar"`
	DidWorkout   bool   `json:"didWorkout"`
}

type LogResponse struct {
	Date         string          `json:"date"`
	Steps        string          `json:"steps"`
	WaterIntake  string          `json:"waterIntake"`
	SleepHours   string          `json:"sleepHours"`
	NoAddedSugar bool            `json:"noAddedSugar"`
	DidWorkout   bool            `json:"didWorkout"`
	Points       int             `json:"points"`
	Breakdown    score.Breakdown `json:"breakdown"`
}

type SubmitLogResponse struct {
	Date      string          `json:"date"`
	Points    int             `json:"points"`
	Breakdown score.Breakdown `json:"breakdown"`
}

type TodayResponse struct {
	Exists bool         `json:"exists"`
	Log    *LogResponse `json:"log,omitempty"`
}

func formatLog(l DailyLog) LogResponse {
	breakdown := score.Active().Score(l.Activity())
	return LogResponse{
		Date:         l.LogDate,
		Steps:        l.Steps,
		WaterIntake:  l.WaterIntake,
		SleepHours:   l.SleepHours,
		NoAddedSugar: l.NoAddedSugar,
		DidWorkout:   l.DidWorkout,
		Points:       breakdown.Total,
		Breakdown:    breakdown,
	}
}

// --- 控制器函数 ---

// HandleSubmitLog 提交或覆盖一条打卡记录。
// 不携带日期时默认为当天；同一天的重复提交覆盖旧记录。
func HandleSubmitLog(c *gin.Context) {
	userID := c.GetString(user.UserIDKey)

	var req SubmitLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式无效"})
		return
	}

	logDate := req.Date
	if logDate == "" {
		logDate = time.Now().Format(DateLayout)
	} else if _, err := time.ParseInLocation(DateLayout, logDate, time.Local); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "日期格式无效，应为YYYY-MM-DD"})
		return
	}

	breakdown, err := SubmitLog(userID, logDate, score.RawActivity{
		Steps:        req.Steps,
		WaterIntake:  req.WaterIntake,
		SleepHours:   req.SleepHours,
		NoAddedSugar: req.NoAddedSugar,
		DidWorkout:   req.DidWorkout,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存打卡记录失败"})
		return
	}

	c.JSON(http.StatusOK, SubmitLogResponse{
		Date:      logDate,
		Points:    breakdown.Total,
		Breakdown: breakdown,
	})
}

// HandleGetLogs 返回当前用户的全部打卡记录及其积分。
func HandleGetLogs(c *gin.Context) {
	userID := c.GetString(user.UserIDKey)

	logs, err := GetLogsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取打卡记录失败"})
		return
	}

	responses := make([]LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, formatLog(l))
	}
	c.JSON(http.StatusOK, responses)
}

// HandleGetToday 查询当前用户今天是否已经打卡。
func HandleGetToday(c *gin.Context) {
	userID := c.GetString(user.UserIDKey)

	today := time.Now().Format(DateLayout)
	log, err := GetLogForDate(userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询打卡记录失败"})
		return
	}

	if log == nil {
		c.JSON(http.StatusOK, TodayResponse{Exists: false})
		return
	}
	formatted := formatLog(*log)
	c.JSON(http.StatusOK, TodayResponse{Exists: true, Log: &formatted})
}

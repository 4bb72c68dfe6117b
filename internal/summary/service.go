package summary

import (
	"time"

	"github.com/SlpAus/fitness-challenge-backend/internal/dailylog"
	"github.com/SlpAus/fitness-challenge-backend/internal/score"
)

// ChartsDTO 打包仪表盘所需的全部图表数据。
type ChartsDTO struct {
	WeekdayAverages      []WeekdayAverage `json:"weekdayAverages"`
	ActivityDistribution []ActivityShare  `json:"activityDistribution"`
}

// GetWeeklySummaryForUser 读取用户的全部打卡记录并聚合为本周的积分汇总。
// 每次调用都从持久层全量重算，派生结果从不落库。
func GetWeeklySummaryForUser(userUUID string) (WeeklySummary, error) {
	logs, err := dailylog.GetLogsForUser(userUUID)
	if err != nil {
		return WeeklySummary{}, err
	}
	return BuildWeeklySummary(logs, time.Now(), score.Active()), nil
}

// GetChartsForUser 读取用户的全部打卡记录并生成仪表盘图表数据。
func GetChartsForUser(userUUID string) (ChartsDTO, error) {
	logs, err := dailylog.GetLogsForUser(userUUID)
	if err != nil {
		return ChartsDTO{}, err
	}
	return ChartsDTO{
		WeekdayAverages:      WeekdayAverages(logs),
		ActivityDistribution: ActivityDistribution(logs),
	}, nil
}

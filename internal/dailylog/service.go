package dailylog

import (
	"errors"
	"fmt"

	"github.com/SlpAus/fitness-challenge-backend/internal/platform/database"
	"github.com/SlpAus/fitness-challenge-backend/internal/score"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OnLogSaved 是打卡写入成功后的通知回调，由启动流程注入。
// 排行榜模块通过它在日志集合变化时重新计算对应用户的聚合结果。
var OnLogSaved func(userUUID string)

// SubmitLog 写入或覆盖指定用户某一天的打卡记录，并返回该记录的积分构成。
// 同一(用户,日期)的再次提交覆盖旧数据，这是每人每天一条记录不变量的实现。
func SubmitLog(userUUID, logDate string, raw score.RawActivity) (score.Breakdown, error) {
	newLog := DailyLog{
		UserUUID:     userUUID,
		LogDate:      logDate,
		Steps:        raw.Steps,
		WaterIntake:  raw.WaterIntake,
		SleepHours:   raw.SleepHours,
		NoAddedSugar: raw.NoAddedSugar,
		DidWorkout:   raw.DidWorkout,
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_uuid"}, {Name: "log_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"steps", "water_intake", "sleep_hours", "no_added_sugar", "did_workout", "updated_at"}),
	}).Create(&newLog).Error
	if err != nil {
		return score.Breakdown{}, fmt.Errorf("无法持久化打卡记录: %w", err)
	}

	// 通知聚合侧：该用户的日志集合已发生变化
	if OnLogSaved != nil {
		OnLogSaved(userUUID)
	}

	return score.Active().Score(score.Normalize(raw)), nil
}

// GetLogsForUser 返回指定用户的全部打卡记录，按日期从新到旧排序。
func GetLogsForUser(userUUID string) ([]DailyLog, error) {
	var logs []DailyLog
	err := database.DB.
		Where("user_uuid = ?", userUUID).
		Order("log_date desc").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("无法从SQLite读取用户 %s 的打卡记录: %w", userUUID, err)
	}
	return logs, nil
}

// GetLogForDate 返回指定用户某一天的打卡记录，当天没有记录时返回nil。
func GetLogForDate(userUUID, logDate string) (*DailyLog, error) {
	var log DailyLog
	err := database.DB.
		Where("user_uuid = ? AND log_date = ?", userUUID, logDate).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("无法查询用户 %s 在 %s 的打卡记录: %w", userUUID, logDate, err)
	}
	return &log, nil
}

// GetLogsGroupedByUser 返回所有用户的全部打卡记录，按用户UUID分组。
// 排行榜的全量重建使用这条路径。
func GetLogsGroupedByUser() (map[string][]DailyLog, error) {
	var logs []DailyLog
	if err := database.DB.Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("无法从SQLite读取打卡记录: %w", err)
	}

	grouped := make(map[string][]DailyLog)
	for _, l := range logs {
		grouped[l.UserUUID] = append(grouped[l.UserUUID], l)
	}
	return grouped, nil
}

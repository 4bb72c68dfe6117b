package dailylog

import (
	"time"

	"github.com/SlpAus/fitness-challenge-backend/internal/score"
	"gorm.io/gorm"
)

// DateLayout 是打卡日期的存储格式。只关心日历日，不含时间部分。
const DateLayout = "2006-01-02"

// DailyLog 定义了用户单日打卡记录在SQLite数据库中的持久化模型。
// (UserUUID, LogDate) 上的唯一索引保证了每人每天至多一条记录；
// 对同一天的再次提交通过upsert覆盖旧记录，而不是追加。
type DailyLog struct {
	gorm.Model

	// UserUUID 是打卡用户的UUID。
	UserUUID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_log_date"`

	// LogDate 是打卡对应的日历日，格式为 "2006-01-02"。
	LogDate string `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_log_date"`

	// --- 以下是原始活动数据 ---
	// 数字字段按历史后端的格式以字符串原样保存，
	// 读取路径上统一经过规范化后再计分。

	Steps        string
	WaterIntake  string
	SleepHours   string
	NoAddedSugar bool
	DidWorkout   bool
}

// Raw 返回记录中的原始活动数据。
func (l *DailyLog) Raw() score.RawActivity {
	return score.RawActivity{
		Steps:        l.Steps,
		WaterIntake:  l.WaterIntake,
		SleepHours:   l.SleepHours,
		NoAddedSugar: l.NoAddedSugar,
		DidWorkout:   l.DidWorkout,
	}
}

// Activity 返回经过规范化的活动数据。
func (l *DailyLog) Activity() score.Activity {
	return score.Normalize(l.Raw())
}

// Date 将LogDate解析为本地时区的时间值。
// 记录中的日期格式由写入路径保证，解析失败时返回零值。
func (l *DailyLog) Date() time.Time {
	t, err := time.ParseInLocation(DateLayout, l.LogDate, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

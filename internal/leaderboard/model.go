package leaderboard

import (
	"time"

	"gorm.io/gorm"
)

// StandingsSnapshot 定义了定期落库的排行榜快照。
// 快照只用于历史展示与审计，任何聚合计算都不会从它读回数据——
// 排行榜永远从打卡记录重新计算。
type StandingsSnapshot struct {
	gorm.Model

	// TakenAt 是快照生成的时间。
	TakenAt time.Time `gorm:"index"`

	// Rubric 记录快照生成时选用的计分规则版本。
	Rubric string

	// Standings 是榜单条目数组的JSON序列化字符串。
	Standings string
}

package summary

import (
	"time"

	"github.com/SlpAus/fitness-challenge-backend/internal/dailylog"
	"github.com/SlpAus/fitness-challenge-backend/internal/score"
)

// DayBucket 是周汇总中单个日历日的聚合结果。
type DayBucket struct {
	Day       string          `json:"day"`
	ShortDay  string          `json:"shortDay"`
	Date      time.Time       `json:"date"`
	HasLog    bool            `json:"hasLog"`
	Points    int             `json:"points"`
	Breakdown score.Breakdown `json:"breakdown"`
}

// BestDay 标记一周中得分最高的一天。
type BestDay struct {
	Day    string `json:"day"`
	Points int    `json:"points"`
}

// WeeklySummary 是一周（周日到周六）的积分汇总。
type WeeklySummary struct {
	Days              []DayBucket `json:"days"`
	TotalWeeklyPoints int         `json:"totalWeeklyPoints"`
	BestDay           *BestDay    `json:"bestDay"`
}

// BuildWeeklySummary 将用户的打卡记录聚合为参考时间所在周的积分汇总。
// 纯函数：不修改输入，重复调用产生相同结果。
// 周外的记录被过滤掉；同一天出现多条记录时，后处理的一条生效。
func BuildWeeklySummary(logs []dailylog.DailyLog, ref time.Time, rubric score.Rubric) WeeklySummary {
	start, end := WeekBounds(ref)

	// 初始化7个空的日桶
	days := make([]DayBucket, 7)
	for i := range days {
		date := start.AddDate(0, 0, i)
		days[i] = DayBucket{
			Day:      dayNames[i],
			ShortDay: formatDayForDisplay(date),
			Date:     date,
		}
	}

	// 将周内的记录计分后落入对应的日桶
	for _, l := range logs {
		logDate := l.Date()
		if logDate.Before(start) || logDate.After(end) {
			continue
		}
		idx := int(logDate.Weekday())
		breakdown := rubric.Score(l.Activity())
		days[idx].HasLog = true
		days[idx].Points = breakdown.Total
		days[idx].Breakdown = breakdown
	}

	// 汇总周积分
	total := 0
	for _, d := range days {
		total += d.Points
	}

	// 找出最佳的一天：有记录的日桶中的最高分，并列时取最靠前的一天
	var best *BestDay
	for _, d := range days {
		if !d.HasLog {
			continue
		}
		if best == nil || d.Points > best.Points {
			best = &BestDay{Day: d.Day, Points: d.Points}
		}
	}

	return WeeklySummary{
		Days:              days,
		TotalWeeklyPoints: total,
		BestDay:           best,
	}
}

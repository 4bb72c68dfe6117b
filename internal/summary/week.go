package summary

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// dayNames 按周日到周六的顺序排列，与time.Weekday的数值一致。
var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var shortDayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekBounds 返回参考时间所在周的边界。
// 一周从周日00:00:00开始（含），到周六的最后一刻结束（含）。
func WeekBounds(ref time.Time) (start, end time.Time) {
	cfg := &now.Config{
		WeekStartDay: time.Sunday,
		TimeLocation: ref.Location(),
	}
	start = cfg.With(ref).BeginningOfWeek()
	end = cfg.With(start.AddDate(0, 0, 6)).EndOfDay()
	return start, end
}

// formatDayForDisplay 将日期格式化为展示用的短标签，例如 "Mon 5/15"。
func formatDayForDisplay(date time.Time) string {
	return fmt.Sprintf("%s %d/%d", shortDayNames[int(date.Weekday())], int(date.Month()), date.Day())
}

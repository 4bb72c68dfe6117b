package summary

import (
	"testing"
	"time"

	"github.com/SlpAus/fitness-challenge-backend/internal/dailylog"
	"github.com/SlpAus/fitness-challenge-backend/internal/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-05-14是周三，所在周为2025-05-11(周日)到2025-05-17(周六)
var refWednesday = time.Date(2025, 5, 14, 12, 30, 0, 0, time.Local)

func makeLog(date, steps, water, sleep string, noSugar, workout bool) dailylog.DailyLog {
	return dailylog.DailyLog{
		LogDate:      date,
		Steps:        steps,
		WaterIntake:  water,
		SleepHours:   sleep,
		NoAddedSugar: noSugar,
		DidWorkout:   workout,
	}
}

func TestWeekBounds(t *testing.T) {
	start, end := WeekBounds(refWednesday)
	assert.Equal(t, time.Date(2025, 5, 11, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Saturday, end.Weekday())
	assert.Equal(t, 17, end.Day())

	// 周日和周六自身也应落在同一周内
	sundayStart, _ := WeekBounds(time.Date(2025, 5, 11, 0, 0, 0, 0, time.Local))
	saturdayStart, _ := WeekBounds(time.Date(2025, 5, 17, 23, 0, 0, 0, time.Local))
	assert.Equal(t, start, sundayStart)
	assert.Equal(t, start, saturdayStart)
}

func TestBuildWeeklySummaryEmpty(t *testing.T) {
	s := BuildWeeklySummary(nil, refWednesday, score.TieredRubric{})

	require.Len(t, s.Days, 7)
	assert.Equal(t, 0, s.TotalWeeklyPoints)
	assert.Nil(t, s.BestDay)
	for i, d := range s.Days {
		assert.False(t, d.HasLog)
		assert.Equal(t, 0, d.Points)
		assert.Equal(t, time.Weekday(i), d.Date.Weekday())
	}
	assert.Equal(t, "Sunday", s.Days[0].Day)
	assert.Equal(t, "Saturday", s.Days[6].Day)
	assert.Equal(t, "Sun 5/11", s.Days[0].ShortDay)
	assert.Equal(t, "Wed 5/14", s.Days[3].ShortDay)
}

func TestBuildWeeklySummarySingleLog(t *testing.T) {
	logs := []dailylog.DailyLog{
		makeLog("2025-05-14", "20000", "2", "6", true, true), // 周三，54分
	}
	s := BuildWeeklySummary(logs, refWednesday, score.TieredRubric{})

	wed := s.Days[3]
	assert.True(t, wed.HasLog)
	assert.Equal(t, 54, wed.Points)
	assert.Equal(t, 25, wed.Breakdown.Steps)

	for i, d := range s.Days {
		if i == 3 {
			continue
		}
		assert.False(t, d.HasLog)
		assert.Equal(t, 0, d.Points)
	}

	assert.Equal(t, 54, s.TotalWeeklyPoints)
	require.NotNil(t, s.BestDay)
	assert.Equal(t, "Wednesday", s.BestDay.Day)
	assert.Equal(t, 54, s.BestDay.Points)
}

func TestBuildWeeklySummaryFiltersOutOfWeek(t *testing.T) {
	logs := []dailylog.DailyLog{
		makeLog("2025-05-10", "20000", "2", "6", true, true),  // 上周六
		makeLog("2025-05-18", "20000", "2", "6", true, true),  // 下周日
		makeLog("2025-05-12", "5000", "0", "0", false, false), // 本周一，10分
	}
	s := BuildWeeklySummary(logs, refWednesday, score.TieredRubric{})

	assert.Equal(t, 10, s.TotalWeeklyPoints)
	assert.True(t, s.Days[1].HasLog)
	assert.False(t, s.Days[0].HasLog)
	assert.False(t, s.Days[6].HasLog)
}

func TestBuildWeeklySummaryDuplicateDayLastWins(t *testing.T) {
	logs := []dailylog.DailyLog{
		makeLog("2025-05-13", "20000", "0", "0", false, false), // 25分
		makeLog("2025-05-13", "5000", "0", "0", false, false),  // 覆盖为10分
	}
	s := BuildWeeklySummary(logs, refWednesday, score.TieredRubric{})

	tue := s.Days[2]
	assert.True(t, tue.HasLog)
	assert.Equal(t, 10, tue.Points)
	assert.Equal(t, 10, s.TotalWeeklyPoints)
}

func TestBuildWeeklySummaryBestDayTie(t *testing.T) {
	// 并列时取一周中最靠前的一天
	logs := []dailylog.DailyLog{
		makeLog("2025-05-16", "5000", "0", "0", false, false),
		makeLog("2025-05-12", "5000", "0", "0", false, false),
	}
	s := BuildWeeklySummary(logs, refWednesday, score.TieredRubric{})

	require.NotNil(t, s.BestDay)
	assert.Equal(t, "Monday", s.BestDay.Day)
	assert.Equal(t, 10, s.BestDay.Points)
}

func TestBuildWeeklySummaryZeroPointLogStillCounts(t *testing.T) {
	// 0分的打卡也算有记录，最佳一天可以是0分
	logs := []dailylog.DailyLog{
		makeLog("2025-05-15", "100", "0.5", "4", false, false),
	}
	s := BuildWeeklySummary(logs, refWednesday, score.TieredRubric{})

	assert.True(t, s.Days[4].HasLog)
	assert.Equal(t, 0, s.TotalWeeklyPoints)
	require.NotNil(t, s.BestDay)
	assert.Equal(t, "Thursday", s.BestDay.Day)
	assert.Equal(t, 0, s.BestDay.Points)
}

func TestBuildWeeklySummaryIdempotent(t *testing.T) {
	logs := []dailylog.DailyLog{
		makeLog("2025-05-11", "12000", "2.5", "7", true, false),
		makeLog("2025-05-14", "8000", "1", "5", false, true),
	}
	first := BuildWeeklySummary(logs, refWednesday, score.TieredRubric{})
	second := BuildWeeklySummary(logs, refWednesday, score.TieredRubric{})
	assert.Equal(t, first, second)
}

func TestWeekdayAverages(t *testing.T) {
	logs := []dailylog.DailyLog{
		makeLog("2025-05-12", "10000", "2", "8", false, false), // 周一
		makeLog("2025-05-19", "6000", "1", "6", false, false),  // 下周一
		makeLog("2025-05-14", "4000", "1.5", "7.5", false, false),
	}
	averages := WeekdayAverages(logs)

	require.Len(t, averages, 7)
	mon := averages[1]
	assert.Equal(t, "Mon", mon.Name)
	assert.Equal(t, 8000, mon.Steps)
	assert.Equal(t, 1.5, mon.Water)
	assert.Equal(t, 7.0, mon.Sleep)

	wed := averages[3]
	assert.Equal(t, 4000, wed.Steps)
	assert.Equal(t, 1.5, wed.Water)
	assert.Equal(t, 7.5, wed.Sleep)

	// 没有记录的星期几各项均为0
	assert.Equal(t, 0, averages[0].Steps)
	assert.Equal(t, 0.0, averages[0].Water)
}

func TestActivityDistribution(t *testing.T) {
	logs := []dailylog.DailyLog{
		makeLog("2025-05-12", "10000", "2", "8", true, true),
		makeLog("2025-05-13", "5000", "1", "6", false, true),
	}
	shares := ActivityDistribution(logs)

	require.Len(t, shares, 5)
	assert.Equal(t, ActivityShare{Name: "Steps", Value: 15.0}, shares[0])
	assert.Equal(t, ActivityShare{Name: "Water", Value: 30.0}, shares[1])
	assert.Equal(t, ActivityShare{Name: "Sleep", Value: 70.0}, shares[2])
	assert.Equal(t, ActivityShare{Name: "Workouts", Value: 40.0}, shares[3])
	assert.Equal(t, ActivityShare{Name: "No Sugar", Value: 15.0}, shares[4])
}

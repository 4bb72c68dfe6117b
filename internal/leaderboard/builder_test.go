package leaderboard

import (
	"testing"

	"github.com/SlpAus/fitness-challenge-backend/internal/dailylog"
	"github.com/SlpAus/fitness-challenge-backend/internal/score"
	"github.com/SlpAus/fitness-challenge-backend/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLog(date, steps string, noSugar, workout bool) dailylog.DailyLog {
	return dailylog.DailyLog{
		LogDate:      date,
		Steps:        steps,
		NoAddedSugar: noSugar,
		DidWorkout:   workout,
	}
}

func TestBuildOrdersByTotalPoints(t *testing.T) {
	users := []user.User{
		{UUID: "u1", Name: "Alice"},
		{UUID: "u2", Name: "Bob"},
	}
	logsByUser := map[string][]dailylog.DailyLog{
		// Alice: 三天打卡，25+25+4=54分
		"u1": {
			makeLog("2025-05-12", "20000", false, false),
			makeLog("2025-05-13", "20000", false, false),
			makeLog("2025-05-14", "0", true, false),
		},
		// Bob: 一天打卡，10分
		"u2": {
			makeLog("2025-05-12", "5000", false, false),
		},
	}

	entries := Build(users, logsByUser, score.TieredRubric{})

	require.Len(t, entries, 2)
	assert.Equal(t, "u1", entries[0].UserUUID)
	assert.Equal(t, "Alice", entries[0].DisplayName)
	assert.Equal(t, 54, entries[0].TotalPoints)
	assert.Equal(t, 3, entries[0].Streak)

	assert.Equal(t, "u2", entries[1].UserUUID)
	assert.Equal(t, 10, entries[1].TotalPoints)
	assert.Equal(t, 1, entries[1].Streak)
}

func TestBuildIncludesUsersWithoutLogs(t *testing.T) {
	users := []user.User{
		{UUID: "u1", Name: "Alice"},
		{UUID: "u2", Name: "Bob"},
	}
	logsByUser := map[string][]dailylog.DailyLog{
		"u1": {makeLog("2025-05-12", "5000", false, false)},
	}

	entries := Build(users, logsByUser, score.TieredRubric{})

	require.Len(t, entries, 2)
	assert.Equal(t, "u2", entries[1].UserUUID)
	assert.Equal(t, 0, entries[1].TotalPoints)
	assert.Equal(t, 0, entries[1].Streak)
}

func TestBuildStreakCountsDistinctDays(t *testing.T) {
	// 打卡天数统计的是不同日历日的数量，与日期是否连续无关
	users := []user.User{{UUID: "u1", Name: "Alice"}}
	logsByUser := map[string][]dailylog.DailyLog{
		"u1": {
			makeLog("2025-05-01", "5000", false, false),
			makeLog("2025-05-10", "5000", false, false),
			makeLog("2025-05-20", "5000", false, false),
		},
	}

	entries := Build(users, logsByUser, score.TieredRubric{})
	assert.Equal(t, 3, entries[0].Streak)
}

func TestBuildStableTieOrder(t *testing.T) {
	// 总分并列时保持输入中的用户顺序
	users := []user.User{
		{UUID: "u1", Name: "Alice"},
		{UUID: "u2", Name: "Bob"},
		{UUID: "u3", Name: "Carol"},
	}
	logsByUser := map[string][]dailylog.DailyLog{
		"u1": {makeLog("2025-05-12", "5000", false, false)},
		"u2": {makeLog("2025-05-13", "5000", false, false)},
		"u3": {makeLog("2025-05-14", "20000", false, false)},
	}

	entries := Build(users, logsByUser, score.TieredRubric{})

	require.Len(t, entries, 3)
	assert.Equal(t, "u3", entries[0].UserUUID)
	assert.Equal(t, "u1", entries[1].UserUUID)
	assert.Equal(t, "u2", entries[2].UserUUID)
}

func TestBuildIdempotent(t *testing.T) {
	users := []user.User{
		{UUID: "u1", Name: "Alice"},
		{UUID: "u2", Name: "Bob"},
	}
	logsByUser := map[string][]dailylog.DailyLog{
		"u1": {makeLog("2025-05-12", "12000", true, true)},
		"u2": {makeLog("2025-05-12", "8000", false, true)},
	}

	first := Build(users, logsByUser, score.TieredRubric{})
	second := Build(users, logsByUser, score.TieredRubric{})
	assert.Equal(t, first, second)
}

func TestBuildEmpty(t *testing.T) {
	entries := Build(nil, nil, score.TieredRubric{})
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

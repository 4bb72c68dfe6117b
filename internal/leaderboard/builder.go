package leaderboard

import (
	"sort"

	"github.com/SlpAus/fitness-challenge-backend/internal/dailylog"
	"github.com/SlpAus/fitness-challenge-backend/internal/score"
	"github.com/SlpAus/fitness-challenge-backend/internal/user"
)

// Entry 是排行榜上的单个条目。
type Entry struct {
	UserUUID    string `json:"uid"`
	DisplayName string `json:"name"`
	PhotoURL    string `json:"photoURL"`
	TotalPoints int    `json:"points"`

	// Streak 统计的是有打卡记录的不同日历日总数，
	// 不是连续打卡天数。沿用历史字段名。
	Streak int `json:"streak"`
}

// Build 将所有用户的全部打卡记录聚合为按总积分降序的排行榜。
// 纯函数：不修改输入，重复调用产生相同结果。
// 没有任何记录的用户也会出现在榜单上，总分与打卡天数均为0；
// 总分并列时保持输入中的用户顺序（稳定排序）。
func Build(users []user.User, logsByUser map[string][]dailylog.DailyLog, rubric score.Rubric) []Entry {
	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		total := 0
		loggedDates := make(map[string]struct{})
		for _, l := range logsByUser[u.UUID] {
			total += rubric.Score(l.Activity()).Total
			loggedDates[l.LogDate] = struct{}{}
		}
		entries = append(entries, Entry{
			UserUUID:    u.UUID,
			DisplayName: u.Name,
			PhotoURL:    u.PhotoURL,
			TotalPoints: total,
			Streak:      len(loggedDates),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	return entries
}

package score

import (
	"strconv"
	"strings"
)

// Normalize 将原始活动数据规范化为可计分的形式。
// 任何无法解析或为负的数值一律归零；本函数对所有输入都不会失败。
func Normalize(raw RawActivity) Activity {
	return Activity{
		Steps:        parseNonNegativeInt(raw.Steps),
		WaterIntake:  parseNonNegativeFloat(raw.WaterIntake),
		SleepHours:   parseNonNegativeFloat(raw.SleepHours),
		NoAddedSugar: raw.NoAddedSugar,
		DidWorkout:   raw.DidWorkout,
	}
}

// parseNonNegativeInt 将字符串解析为非负整数，失败时返回0。
func parseNonNegativeInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseNonNegativeFloat 将字符串解析为非负实数，失败时返回0。
func parseNonNegativeFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

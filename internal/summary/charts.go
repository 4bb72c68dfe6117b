package summary

import (
	"math"

	"github.com/SlpAus/fitness-challenge-backend/internal/dailylog"
)

// WeekdayAverage 是仪表盘折线图所需的单个星期几的平均活动量。
type WeekdayAverage struct {
	Name  string  `json:"name"`
	Steps int     `json:"steps"`
	Water float64 `json:"water"`
	Sleep float64 `json:"sleep"`
}

// ActivityShare 是仪表盘饼图中单项活动的占比值。
type ActivityShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// WeekdayAverages 按星期几聚合全部打卡记录，返回各项活动的平均值。
// 没有记录的星期几各项均为0。
func WeekdayAverages(logs []dailylog.DailyLog) []WeekdayAverage {
	var sums [7]struct {
		steps int
		water float64
		sleep float64
		count int
	}

	for _, l := range logs {
		logDate := l.Date()
		if logDate.IsZero() {
			continue
		}
		a := l.Activity()
		idx := int(logDate.Weekday())
		sums[idx].steps += a.Steps
		sums[idx].water += a.WaterIntake
		sums[idx].sleep += a.SleepHours
		sums[idx].count++
	}

	averages := make([]WeekdayAverage, 7)
	for i := range averages {
		averages[i] = WeekdayAverage{Name: shortDayNames[i]}
		if sums[i].count > 0 {
			n := float64(sums[i].count)
			averages[i].Steps = int(math.Round(float64(sums[i].steps) / n))
			averages[i].Water = roundTo1(sums[i].water / n)
			averages[i].Sleep = roundTo1(sums[i].sleep / n)
		}
	}
	return averages
}

// 各项活动在饼图中的换算系数，使不同量纲的总量可以放在同一张图上比较
const (
	distStepsDivisor  = 1000.0
	distWaterFactor   = 10.0
	distSleepFactor   = 5.0
	distWorkoutFactor = 20.0
	distNoSugarFactor = 15.0
)

// ActivityDistribution 汇总全部打卡记录，返回换算后的活动分布数据。
func ActivityDistribution(logs []dailylog.DailyLog) []ActivityShare {
	var totalSteps int
	var totalWater, totalSleep float64
	var totalWorkouts, totalNoSugar int

	for _, l := range logs {
		a := l.Activity()
		totalSteps += a.Steps
		totalWater += a.WaterIntake
		totalSleep += a.SleepHours
		if a.DidWorkout {
			totalWorkouts++
		}
		if a.NoAddedSugar {
			totalNoSugar++
		}
	}

	return []ActivityShare{
		{Name: "Steps", Value: float64(totalSteps) / distStepsDivisor},
		{Name: "Water", Value: totalWater * distWaterFactor},
		{Name: "Sleep", Value: totalSleep * distSleepFactor},
		{Name: "Workouts", Value: float64(totalWorkouts) * distWorkoutFactor},
		{Name: "No Sugar", Value: float64(totalNoSugar) * distNoSugarFactor},
	}
}

func roundTo1(f float64) float64 {
	return math.Round(f*10) / 10
}

package score

import (
	"fmt"
	"math"
)

// Rubric 是计分规则的策略接口。
// 周汇总与排行榜的所有积分计算都必须经由同一个Rubric实例，
// 任何地方都不允许内联重算积分。
type Rubric interface {
	// Score 计算单日活动的分项积分。确定性的纯函数，对所有输入都有定义。
	Score(a Activity) Breakdown
}

// --- 规则版本名 ---

const (
	// RubricTiered 是权威的固定档位规则。
	RubricTiered = "tiered"
	// RubricLegacy 是早期的按量累积公式，仅为兼容历史聚合数据保留。
	RubricLegacy = "legacy"
)

// --- 档位规则常量 ---

const (
	stepsTier1         = 5000
	stepsTier2         = 10000
	stepsTier3         = 15000
	stepsTier4         = 20000
	stepsTier1Points   = 10
	stepsTier2Points   = 15
	stepsTier3Points   = 20
	stepsTier4Points   = 25
	noSugarPoints      = 4
	workoutPoints      = 12
	waterGoalLiters    = 2.0
	waterPoints        = 5
	sleepGoalHours     = 6.0
	sleepPoints        = 8
	partialSleepHours  = 5.0
	partialSleepPoints = 5
)

// TieredRubric 实现权威的固定档位规则。
// 步数取所达到的最高档位，不累计；其余四项独立判定后相加。
type TieredRubric struct {
	// PartialSleepBonus 开启后，睡眠在[5,6)小时区间给予5分的部分奖励。
	// 原始系统中该奖励只存在于个别聚合路径，默认关闭。
	PartialSleepBonus bool
}

// Score 实现Rubric接口。
func (r TieredRubric) Score(a Activity) Breakdown {
	var b Breakdown

	switch {
	case a.Steps >= stepsTier4:
		b.Steps = stepsTier4Points
	case a.Steps >= stepsTier3:
		b.Steps = stepsTier3Points
	case a.Steps >= stepsTier2:
		b.Steps = stepsTier2Points
	case a.Steps >= stepsTier1:
		b.Steps = stepsTier1Points
	}

	if a.NoAddedSugar {
		b.NoSugar = noSugarPoints
	}
	if a.DidWorkout {
		b.Workout = workoutPoints
	}
	if a.WaterIntake >= waterGoalLiters {
		b.Water = waterPoints
	}
	if a.SleepHours >= sleepGoalHours {
		b.Sleep = sleepPoints
	} else if r.PartialSleepBonus && a.SleepHours >= partialSleepHours {
		b.Sleep = partialSleepPoints
	}

	b.Total = b.Steps + b.NoSugar + b.Workout + b.Water + b.Sleep
	return b
}

// --- 历史累积公式常量 ---

const (
	legacyStepsPerPoint = 1000.0
	legacyNoSugarPoints = 10
	legacyWaterPerLiter = 5.0
	legacySleepPerHour  = 2.0
	legacyWorkoutPoints = 20
)

// LegacyRubric 实现早期的按量累积公式。
// 各分项四舍五入为整数，以保持Total等于分项之和的不变量。
type LegacyRubric struct{}

// Score 实现Rubric接口。
func (LegacyRubric) Score(a Activity) Breakdown {
	var b Breakdown
	b.Steps = int(math.Round(float64(a.Steps) / legacyStepsPerPoint))
	if a.NoAddedSugar {
		b.NoSugar = legacyNoSugarPoints
	}
	if a.DidWorkout {
		b.Workout = legacyWorkoutPoints
	}
	b.Water = int(math.Round(a.WaterIntake * legacyWaterPerLiter))
	b.Sleep = int(math.Round(a.SleepHours * legacySleepPerHour))
	b.Total = b.Steps + b.NoSugar + b.Workout + b.Water + b.Sleep
	return b
}

// NewRubric 根据配置的版本名构造对应的计分规则。
func NewRubric(name string, partialSleepBonus bool) (Rubric, error) {
	switch name {
	case RubricTiered, "":
		return TieredRubric{PartialSleepBonus: partialSleepBonus}, nil
	case RubricLegacy:
		return LegacyRubric{}, nil
	default:
		return nil, fmt.Errorf("未知的计分规则版本: %s", name)
	}
}

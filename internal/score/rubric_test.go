package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMalformedInput(t *testing.T) {
	// 无法解析的数值一律归零，布尔值原样保留
	a := Normalize(RawActivity{
		Steps:        "abc",
		WaterIntake:  "",
		SleepHours:   "3.5.1",
		NoAddedSugar: true,
		DidWorkout:   true,
	})
	assert.Equal(t, 0, a.Steps)
	assert.Equal(t, 0.0, a.WaterIntake)
	assert.Equal(t, 0.0, a.SleepHours)
	assert.True(t, a.NoAddedSugar)
	assert.True(t, a.DidWorkout)
}

func TestNormalizeNegativeInput(t *testing.T) {
	a := Normalize(RawActivity{Steps: "-500", WaterIntake: "-1.5", SleepHours: "-8"})
	assert.Equal(t, 0, a.Steps)
	assert.Equal(t, 0.0, a.WaterIntake)
	assert.Equal(t, 0.0, a.SleepHours)
}

func TestNormalizeValidInput(t *testing.T) {
	a := Normalize(RawActivity{Steps: " 12000 ", WaterIntake: "2.5", SleepHours: "7"})
	assert.Equal(t, 12000, a.Steps)
	assert.Equal(t, 2.5, a.WaterIntake)
	assert.Equal(t, 7.0, a.SleepHours)
}

func TestTieredRubricStepsTiers(t *testing.T) {
	r := TieredRubric{}
	cases := []struct {
		steps int
		want  int
	}{
		{0, 0},
		{4999, 0},
		{5000, 10},
		{9999, 10},
		{10000, 15},
		{14999, 15},
		{15000, 20},
		{19999, 20},
		{20000, 25},
		{50000, 25},
	}
	for _, c := range cases {
		b := r.Score(Activity{Steps: c.steps})
		assert.Equalf(t, c.want, b.Steps, "steps=%d", c.steps)
		assert.Equalf(t, c.want, b.Total, "steps=%d", c.steps)
	}
}

func TestTieredRubricFloorAndCeiling(t *testing.T) {
	r := TieredRubric{}

	// 全零输入得0分
	floor := r.Score(Activity{})
	assert.Equal(t, Breakdown{}, floor)

	// 各项全部达标得54分
	ceiling := r.Score(Activity{
		Steps:        20000,
		WaterIntake:  2,
		SleepHours:   6,
		NoAddedSugar: true,
		DidWorkout:   true,
	})
	assert.Equal(t, 25, ceiling.Steps)
	assert.Equal(t, 4, ceiling.NoSugar)
	assert.Equal(t, 12, ceiling.Workout)
	assert.Equal(t, 5, ceiling.Water)
	assert.Equal(t, 8, ceiling.Sleep)
	assert.Equal(t, 54, ceiling.Total)
}

func TestTieredRubricThresholds(t *testing.T) {
	r := TieredRubric{}

	// 水和睡眠的达标判定均为大于等于
	assert.Equal(t, 0, r.Score(Activity{WaterIntake: 1.9}).Water)
	assert.Equal(t, 5, r.Score(Activity{WaterIntake: 2.0}).Water)
	assert.Equal(t, 0, r.Score(Activity{SleepHours: 5.9}).Sleep)
	assert.Equal(t, 8, r.Score(Activity{SleepHours: 6.0}).Sleep)
}

func TestTieredRubricPartialSleepBonus(t *testing.T) {
	on := TieredRubric{PartialSleepBonus: true}
	off := TieredRubric{}

	// 开关关闭时[5,6)区间不给分
	assert.Equal(t, 0, off.Score(Activity{SleepHours: 5.5}).Sleep)

	// 开关开启时[5,6)区间给5分，达到6小时仍给8分
	assert.Equal(t, 0, on.Score(Activity{SleepHours: 4.9}).Sleep)
	assert.Equal(t, 5, on.Score(Activity{SleepHours: 5.0}).Sleep)
	assert.Equal(t, 5, on.Score(Activity{SleepHours: 5.9}).Sleep)
	assert.Equal(t, 8, on.Score(Activity{SleepHours: 6.0}).Sleep)
}

func TestTotalEqualsSumOfParts(t *testing.T) {
	activities := []Activity{
		{},
		{Steps: 7500, WaterIntake: 1.2, SleepHours: 5.5, NoAddedSugar: true},
		{Steps: 20000, WaterIntake: 3, SleepHours: 8, NoAddedSugar: true, DidWorkout: true},
		{Steps: 999, WaterIntake: 0.4, SleepHours: 6.7, DidWorkout: true},
	}
	rubrics := []Rubric{TieredRubric{}, TieredRubric{PartialSleepBonus: true}, LegacyRubric{}}
	for _, r := range rubrics {
		for _, a := range activities {
			b := r.Score(a)
			assert.Equal(t, b.Steps+b.NoSugar+b.Workout+b.Water+b.Sleep, b.Total)
		}
	}
}

func TestLegacyRubric(t *testing.T) {
	r := LegacyRubric{}
	b := r.Score(Activity{
		Steps:        8500,
		WaterIntake:  1.5,
		SleepHours:   7.25,
		NoAddedSugar: true,
		DidWorkout:   true,
	})
	// 各分项按量换算后四舍五入
	assert.Equal(t, 9, b.Steps) // 8500/1000 -> 8.5 -> 9
	assert.Equal(t, 10, b.NoSugar)
	assert.Equal(t, 20, b.Workout)
	assert.Equal(t, 8, b.Water)  // 1.5*5 -> 7.5 -> 8
	assert.Equal(t, 15, b.Sleep) // 7.25*2 -> 14.5 -> 15
	assert.Equal(t, 62, b.Total)
}

func TestNewRubric(t *testing.T) {
	r, err := NewRubric(RubricTiered, true)
	require.NoError(t, err)
	assert.Equal(t, TieredRubric{PartialSleepBonus: true}, r)

	r, err = NewRubric("", false)
	require.NoError(t, err)
	assert.Equal(t, TieredRubric{}, r)

	r, err = NewRubric(RubricLegacy, false)
	require.NoError(t, err)
	assert.Equal(t, LegacyRubric{}, r)

	_, err = NewRubric("bogus", false)
	assert.Error(t, err)
}

func TestScoreIsDeterministic(t *testing.T) {
	r := TieredRubric{PartialSleepBonus: true}
	a := Activity{Steps: 15000, WaterIntake: 2.2, SleepHours: 5.5, NoAddedSugar: true}
	first := r.Score(a)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Score(a))
	}
}

package score

// RawActivity 定义了来自外部记录系统的原始单日活动数据。
// 历史后端（表格/文档存储）把数字字段存成字符串，且内容不可信；
// 布尔字段是真实的布尔值。
type RawActivity struct {
	Steps        string
	WaterIntake  string
	SleepHours   string
	NoAddedSugar bool
	DidWorkout   bool
}

// Activity 定义了经过规范化后、可直接用于计分的单日活动数据。
// 所有数值字段均为非负。
type Activity struct {
	Steps        int
	WaterIntake  float64
	SleepHours   float64
	NoAddedSugar bool
	DidWorkout   bool
}

// Breakdown 定义了单日积分的分项构成。
// Total 恒等于五个分项之和。
type Breakdown struct {
	Steps   int `json:"steps"`
	NoSugar int `json:"noSugar"`
	Workout int `json:"workout"`
	Water   int `json:"water"`
	Sleep   int `json:"sleep"`
	Total   int `json:"total"`
}

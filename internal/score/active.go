package score

import "fmt"

// activeRubric 是应用当前选用的计分规则，在启动时配置一次。
// 默认使用权威的固定档位规则。
var activeRubric Rubric = TieredRubric{}

// Configure 根据配置选择全局计分规则，应在启动初始化时调用一次。
func Configure(name string, partialSleepBonus bool) error {
	r, err := NewRubric(name, partialSleepBonus)
	if err != nil {
		return err
	}
	activeRubric = r
	fmt.Printf("计分规则已选用: %s\n", describe(name))
	return nil
}

// Active 返回当前选用的计分规则。
func Active() Rubric {
	return activeRubric
}

func describe(name string) string {
	if name == "" {
		return RubricTiered
	}
	return name
}

package user

import (
	"time"

	"gorm.io/gorm"
)

// User 定义了挑战参与者在SQLite数据库中的持久化模型。
type User struct {
	// UUID 是用户的主键，来自客户端Cookie。
	UUID string `gorm:"primarykey;type:varchar(36)"`

	// Name 是排行榜上展示的昵称。
	Name string

	// Email 是用户登记的邮箱。
	Email string

	// PhotoURL 是用户头像的地址，可以为空。
	PhotoURL string

	// FitnessGoal 是用户在引导流程中填写的健身目标。
	FitnessGoal string

	// HealthFocus 是用户关注的健康方向。
	HealthFocus string

	// JoinDate 记录用户加入挑战的时间。
	JoinDate time.Time

	// 部分gorm.Model，由GORM自动管理
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

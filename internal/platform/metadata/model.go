package metadata

// Metadata 定义了SQLite中通用的键值元数据表。
// 它用于存放与业务数据表无关的少量系统状态。
type Metadata struct {
	Key   string `gorm:"primarykey;type:varchar(64)"`
	Value string
}

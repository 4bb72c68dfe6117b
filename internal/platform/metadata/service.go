package metadata

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetValue 从元数据表中读取指定键的值，键不存在时返回空字符串。
func GetValue(db *gorm.DB, key string) (string, error) {
	var meta Metadata
	err := db.Where("key = ?", key).First(&meta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return meta.Value, nil
}

// SetValue 以upsert的方式写入指定键的值。
func SetValue(db *gorm.DB, key, value string) error {
	meta := Metadata{
		Key:   key,
		Value: value,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&meta).Error
}

// GetLastSnapshotTime 读取并解析最近一次快照的时间；无记录时返回零值。
func GetLastSnapshotTime(db *gorm.DB) (time.Time, error) {
	valueStr, err := GetValue(db, LastSnapshotTimeKey)
	if err != nil {
		return time.Time{}, err
	}
	if valueStr == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, valueStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("无法解析元数据 '%s' 的值: %w", LastSnapshotTimeKey, err)
	}
	return t, nil
}

// SetLastSnapshotTime 记录最近一次快照的时间。
func SetLastSnapshotTime(db *gorm.DB, t time.Time) error {
	return SetValue(db, LastSnapshotTimeKey, t.Format(time.RFC3339))
}

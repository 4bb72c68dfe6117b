package metadata

import (
	"fmt"
	"time"

	"github.com/SlpAus/fitness-challenge-backend/internal/platform/database"
)

// migrateDB 负责自动迁移元数据表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&Metadata{}); err != nil {
		return fmt.Errorf("无法迁移metadata表: %w", err)
	}
	fmt.Println("Metadata数据库表迁移成功。")
	return nil
}

// ensureChallengeStartDate 保证挑战起始日期存在。
// 配置中指定了日期时以配置为准；否则首次启动时记为当天。
func ensureChallengeStartDate(configured string) error {
	if configured != "" {
		if _, err := time.Parse("2006-01-02", configured); err != nil {
			return fmt.Errorf("配置的挑战起始日期格式无效: %w", err)
		}
		return SetValue(database.DB, ChallengeStartDateKey, configured)
	}

	existing, err := GetValue(database.DB, ChallengeStartDateKey)
	if err != nil {
		return err
	}
	if existing != "" {
		return nil
	}
	return SetValue(database.DB, ChallengeStartDateKey, time.Now().Format("2006-01-02"))
}

// PrimeDB 是metadata模块的初始化总入口
func PrimeDB(configuredStartDate string) error {
	if err := migrateDB(); err != nil {
		return err
	}
	if err := ensureChallengeStartDate(configuredStartDate); err != nil {
		return err
	}
	return nil
}

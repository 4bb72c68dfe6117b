package dailylog

import (
	"fmt"

	"github.com/SlpAus/fitness-challenge-backend/internal/platform/database"
)

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&DailyLog{}); err != nil {
		return fmt.Errorf("无法迁移daily_log表: %w", err)
	}
	fmt.Println("DailyLog数据库表迁移成功。")
	return nil
}

// PrimeDB 是dailylog模块的初始化总入口
func PrimeDB() error {
	return migrateDB()
}

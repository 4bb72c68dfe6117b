package user

import (
	"encoding/json"
	"fmt"

	"github.com/SlpAus/fitness-challenge-backend/internal/platform/database"
)

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("无法迁移user表: %w", err)
	}
	fmt.Println("User数据库表迁移成功。")
	return nil
}

// WarmupCache 从SQLite加载所有已注册用户，并预热到Redis中
func WarmupCache() error {
	var users []User
	if err := database.DB.Find(&users).Error; err != nil {
		return fmt.Errorf("无法从SQLite读取用户数据: %w", err)
	}

	if len(users) == 0 {
		fmt.Println("无现有用户数据，无需预热用户缓存。")
		return nil
	}

	// 使用Pipeline批量重建已知用户集合与资料缓存
	pipe := database.RDB.Pipeline()
	// 先清空旧的缓存，确保数据一致性
	pipe.Del(database.Ctx, KnownUsersKey)
	pipe.Del(database.Ctx, ProfilesKey)
	for _, u := range users {
		profileJSON, err := json.Marshal(Profile{
			Name:     u.Name,
			Email:    u.Email,
			PhotoURL: u.PhotoURL,
		})
		if err != nil {
			return fmt.Errorf("无法序列化用户 %s 的资料: %w", u.UUID, err)
		}
		pipe.SAdd(database.Ctx, KnownUsersKey, u.UUID)
		pipe.HSet(database.Ctx, ProfilesKey, u.UUID, profileJSON)
	}

	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("预热用户缓存到Redis失败: %w", err)
	}

	fmt.Printf("成功预热 %d 个用户到Redis。\n", len(users))
	return nil
}

// PrimeCachedDB 是user模块的初始化总入口
func PrimeCachedDB() error {
	if err := migrateDB(); err != nil {
		return err
	}
	if err := WarmupCache(); err != nil {
		return err
	}
	return nil
}

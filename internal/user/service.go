package user

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SlpAus/fitness-challenge-backend/internal/platform/database"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm/clause"
)

// CreateProvisionalUser 生成一个临时的、尚未持久化的新用户UUID。
// 这个UUID将被设置到cookie中，但此时尚未完成注册。
func CreateProvisionalUser() (string, error) {
	newUUID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("无法生成UUID v7: %w", err)
	}
	return newUUID.String(), nil
}

// IsValidUUID 校验字符串是否是合法的UUID。
func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// IsUserActivated 检查一个给定的UUID是否已经完成注册。
// 它只查询Redis缓存，以获得最高性能。
func IsUserActivated(uuidStr string) (bool, error) {
	if uuidStr == "" {
		return false, nil
	}
	exists, err := database.RDB.SIsMember(database.Ctx, KnownUsersKey, uuidStr).Result()
	if err != nil {
		return false, fmt.Errorf("检查Redis用户缓存时出错: %w", err)
	}
	return exists, nil
}

// ActivateUser 将一个临时UUID连同引导资料正式持久化到数据库和缓存中。
// 对已注册用户重复调用等价于更新资料。
func ActivateUser(uuidStr string, profile Profile, fitnessGoal, healthFocus string) error {
	newUser := User{
		UUID:        uuidStr,
		Name:        profile.Name,
		Email:       profile.Email,
		PhotoURL:    profile.PhotoURL,
		FitnessGoal: fitnessGoal,
		HealthFocus: healthFocus,
		JoinDate:    time.Now(),
	}

	// 开启一个SQLite事务
	tx := database.DB.Begin()
	if tx.Error != nil {
		return fmt.Errorf("无法开始数据库事务: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback() // 如果发生panic，回滚事务
		}
	}()

	// 在事务中以upsert的方式写入用户记录，JoinDate只在首次写入时生效
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uuid"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "photo_url", "fitness_goal", "health_focus", "updated_at"}),
	}).Create(&newUser).Error
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("无法在SQLite中写入用户资料: %w", err)
	}

	// 同步更新Redis缓存；失败则回滚SQLite写入，保证数据一致性
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("无法序列化用户资料: %w", err)
	}
	pipe := database.RDB.Pipeline()
	pipe.SAdd(database.Ctx, KnownUsersKey, uuidStr)
	pipe.HSet(database.Ctx, ProfilesKey, uuidStr, profileJSON)
	if _, err := pipe.Exec(database.Ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("无法将用户 %s 写入Redis缓存: %w", uuidStr, err)
	}

	return tx.Commit().Error
}

// GetProfile 从Redis缓存中读取用户的展示资料。
// 用户不存在时返回nil。
func GetProfile(uuidStr string) (*Profile, error) {
	profileJSON, err := database.RDB.HGet(database.Ctx, ProfilesKey, uuidStr).Result()
	if err == redis.Nil {
		return nil, nil // 未找到
	}
	if err != nil {
		return nil, fmt.Errorf("无法从Redis读取用户 %s 的资料: %w", uuidStr, err)
	}
	var profile Profile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return nil, fmt.Errorf("无法解析用户 %s 的资料: %w", uuidStr, err)
	}
	return &profile, nil
}

// GetAllUsers 从SQLite读取全部已注册用户。
// 排行榜重建与全量聚合使用这条路径。
func GetAllUsers() ([]User, error) {
	var users []User
	if err := database.DB.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("无法从SQLite读取用户列表: %w", err)
	}
	return users, nil
}

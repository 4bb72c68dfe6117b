package leaderboard

import (
	"encoding/json"
	"fmt"

	"github.com/SlpAus/fitness-challenge-backend/internal/dailylog"
	"github.com/SlpAus/fitness-challenge-backend/internal/platform/database"
	"github.com/SlpAus/fitness-challenge-backend/internal/score"
	"github.com/SlpAus/fitness-challenge-backend/internal/user"
	"github.com/redis/go-redis/v9"
)

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&StandingsSnapshot{}); err != nil {
		return fmt.Errorf("无法迁移standings_snapshot表: %w", err)
	}
	fmt.Println("StandingsSnapshot数据库表迁移成功。")
	return nil
}

// WarmupCache 从SQLite全量重算排行榜，并预热到Redis中。
// 注意：重算只依赖原始打卡记录，历史快照不参与。
func WarmupCache() error {
	users, err := user.GetAllUsers()
	if err != nil {
		return err
	}
	logsByUser, err := dailylog.GetLogsGroupedByUser()
	if err != nil {
		return err
	}

	entries := Build(users, logsByUser, score.Active())

	// 使用Pipeline重建排行榜的两个Redis结构
	pipe := database.RDB.Pipeline()
	// 先清空旧的缓存，确保数据一致性
	pipe.Del(database.Ctx, RankingKey)
	pipe.Del(database.Ctx, EntriesKey)
	for _, e := range entries {
		entryJSON, err := json.Marshal(CachedEntry{
			Name:     e.DisplayName,
			PhotoURL: e.PhotoURL,
			Points:   e.TotalPoints,
			Streak:   e.Streak,
		})
		if err != nil {
			return fmt.Errorf("无法序列化用户 %s 的榜单条目: %w", e.UserUUID, err)
		}
		pipe.ZAdd(database.Ctx, RankingKey, redis.Z{Score: float64(e.TotalPoints), Member: e.UserUUID})
		pipe.HSet(database.Ctx, EntriesKey, e.UserUUID, entryJSON)
	}

	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("预热排行榜缓存到Redis失败: %w", err)
	}

	fmt.Printf("成功预热 %d 条榜单条目到Redis。\n", len(entries))
	return nil
}

// PrimeCachedDB 是leaderboard模块的初始化总入口
func PrimeCachedDB() error {
	if err := migrateDB(); err != nil {
		return err
	}
	if err := WarmupCache(); err != nil {
		return err
	}
	return nil
}

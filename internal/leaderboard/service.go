package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SlpAus/fitness-challenge-backend/internal/dailylog"
	"github.com/SlpAus/fitness-challenge-backend/internal/platform/database"
	"github.com/SlpAus/fitness-challenge-backend/internal/platform/metadata"
	"github.com/SlpAus/fitness-challenge-backend/internal/score"
	"github.com/SlpAus/fitness-challenge-backend/internal/user"
	"github.com/redis/go-redis/v9"
)

// --- Service-Level Data Transfer Objects (DTOs) ---

// RankedEntryDTO 包含了排行榜API所需的单条数据
type RankedEntryDTO struct {
	UserUUID string
	Entry    CachedEntry
}

// SnapshotDTO 包含了历史榜单API所需的单条快照数据
type SnapshotDTO struct {
	TakenAt   time.Time
	Rubric    string
	Standings json.RawMessage
}

// --- Service Functions ---

// GetRankedEntries 从Redis中获取完整的、已排序的排行榜
func GetRankedEntries() ([]RankedEntryDTO, error) {
	RLockRepository()
	defer RUnlockRepository()

	// 1. 从Sorted Set获取所有用户UUID，按总积分从高到低排序
	userUUIDs, err := database.RDB.ZRevRange(database.Ctx, RankingKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("无法从Redis获取排行榜排序: %w", err)
	}
	if len(userUUIDs) == 0 {
		return []RankedEntryDTO{}, nil
	}

	// 2. 一次性获取所有条目的展示数据
	entryJSONs, err := database.RDB.HMGet(database.Ctx, EntriesKey, userUUIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("无法从Redis获取榜单条目: %w", err)
	}

	// 3. 组合成DTO列表
	ranked := make([]RankedEntryDTO, 0, len(userUUIDs))
	for i, uid := range userUUIDs {
		var entry CachedEntry
		if entryJSONs[i] != nil {
			_ = json.Unmarshal([]byte(entryJSONs[i].(string)), &entry)
		}
		ranked = append(ranked, RankedEntryDTO{
			UserUUID: uid,
			Entry:    entry,
		})
	}
	return ranked, nil
}

// RefreshUser 在某个用户的日志集合发生变化后，重算并更新其榜单条目。
// 聚合始终通过当前选用的计分规则从原始记录全量重算。
func RefreshUser(userUUID string) error {
	if !database.IsRedisHealthy() {
		// 缓存不可用时跳过；恢复后的热重建会覆盖全量数据
		return nil
	}

	logs, err := dailylog.GetLogsForUser(userUUID)
	if err != nil {
		return err
	}
	profile, err := user.GetProfile(userUUID)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("用户 %s 不存在，无法刷新榜单条目", userUUID)
	}

	rubric := score.Active()
	total := 0
	loggedDates := make(map[string]struct{})
	for _, l := range logs {
		total += rubric.Score(l.Activity()).Total
		loggedDates[l.LogDate] = struct{}{}
	}

	entry := CachedEntry{
		Name:     profile.Name,
		PhotoURL: profile.PhotoURL,
		Points:   total,
		Streak:   len(loggedDates),
	}
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("无法序列化榜单条目: %w", err)
	}

	LockRepository()
	defer UnlockRepository()

	pipe := database.RDB.Pipeline()
	pipe.ZAdd(database.Ctx, RankingKey, redis.Z{Score: float64(total), Member: userUUID})
	pipe.HSet(database.Ctx, EntriesKey, userUUID, entryJSON)
	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("无法更新用户 %s 的榜单缓存: %w", userUUID, err)
	}
	return nil
}

// CreateStandingsSnapshot 读取当前榜单并作为历史快照写入SQLite。
func CreateStandingsSnapshot(ctx context.Context) error {
	ranked, err := GetRankedEntries()
	if err != nil {
		return err
	}

	entries := make([]Entry, 0, len(ranked))
	for _, dto := range ranked {
		entries = append(entries, Entry{
			UserUUID:    dto.UserUUID,
			DisplayName: dto.Entry.Name,
			PhotoURL:    dto.Entry.PhotoURL,
			TotalPoints: dto.Entry.Points,
			Streak:      dto.Entry.Streak,
		})
	}
	standingsJSON, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("无法序列化榜单快照: %w", err)
	}

	takenAt := time.Now()
	snapshot := StandingsSnapshot{
		TakenAt:   takenAt,
		Rubric:    activeRubricName(),
		Standings: string(standingsJSON),
	}
	if err := database.DB.WithContext(ctx).Create(&snapshot).Error; err != nil {
		return fmt.Errorf("无法持久化榜单快照: %w", err)
	}

	if err := metadata.SetLastSnapshotTime(database.DB.WithContext(ctx), takenAt); err != nil {
		return fmt.Errorf("无法更新快照时间元数据: %w", err)
	}
	return nil
}

// GetSnapshotHistory 返回最近limit条历史快照，按时间从新到旧排序。
func GetSnapshotHistory(limit int) ([]SnapshotDTO, error) {
	var snapshots []StandingsSnapshot
	err := database.DB.
		Order("taken_at desc").
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("无法从SQLite读取榜单快照: %w", err)
	}

	dtos := make([]SnapshotDTO, 0, len(snapshots))
	for _, s := range snapshots {
		dtos = append(dtos, SnapshotDTO{
			TakenAt:   s.TakenAt,
			Rubric:    s.Rubric,
			Standings: json.RawMessage(s.Standings),
		})
	}
	return dtos, nil
}

// activeRubricName 返回当前计分规则的版本名，用于标注快照。
func activeRubricName() string {
	switch score.Active().(type) {
	case score.LegacyRubric:
		return score.RubricLegacy
	default:
		return score.RubricTiered
	}
}

package startup

import (
	"context"
	"fmt"

	"github.com/SlpAus/fitness-challenge-backend/internal/dailylog"
	"github.com/SlpAus/fitness-challenge-backend/internal/leaderboard"
	"github.com/SlpAus/fitness-challenge-backend/internal/platform/config"
	"github.com/SlpAus/fitness-challenge-backend/internal/platform/metadata"
	"github.com/SlpAus/fitness-challenge-backend/internal/score"
	"github.com/SlpAus/fitness-challenge-backend/internal/user"
)

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication(cfg *config.Config) error {
	fmt.Println("开始应用首次初始化...")

	if err := score.Configure(cfg.Challenge.Rubric, cfg.Challenge.PartialSleepBonus); err != nil {
		return err
	}
	if err := metadata.PrimeDB(cfg.Challenge.StartDate); err != nil {
		return err
	}
	if err := user.PrimeCachedDB(); err != nil {
		return err
	}
	if err := dailylog.PrimeDB(); err != nil {
		return err
	}
	if err := leaderboard.PrimeCachedDB(); err != nil {
		return err
	}

	// 打卡写入成功后的联动：日志集合变化时重算对应用户的榜单条目
	dailylog.OnLogSaved = func(userUUID string) {
		if err := leaderboard.RefreshUser(userUUID); err != nil {
			fmt.Printf("警告: 刷新用户 %s 的榜单条目失败: %v\n", userUUID, err)
		}
	}

	fmt.Println("应用初始化完成！")
	return nil
}

// RebuildCache 是一个专门用于在运行时热重建Redis缓存的函数
func RebuildCache() error {
	fmt.Println("开始缓存热重建...")

	err := func() error {
		user.LockRepository()
		defer user.UnlockRepository()
		if err := user.WarmupCache(); err != nil {
			return err
		}

		leaderboard.LockRepository()
		defer leaderboard.UnlockRepository()
		if err := leaderboard.WarmupCache(); err != nil {
			return err
		}
		return nil
	}()

	if err != nil {
		return err
	}

	// 触发一次新的快照
	fmt.Println("缓存热重建完成，正在触发一次新的榜单快照...")
	if err := leaderboard.CreateStandingsSnapshot(context.Background()); err != nil {
		fmt.Printf("警告: 缓存热重建后的快照创建失败: %v\n", err)
	} else {
		fmt.Println("快照创建成功！")
	}

	return nil
}

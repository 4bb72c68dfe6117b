package backup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SlpAus/fitness-challenge-backend/internal/leaderboard"
	"github.com/SlpAus/fitness-challenge-backend/internal/platform/database"
	"github.com/SlpAus/fitness-challenge-backend/pkg/lifecycle"
)

const backupInterval = 10 * time.Minute // 定时快照频率

var backupMutex sync.Mutex // 避免意外竞态

// StartBackupScheduler 启动一个后台Goroutine来定期持久化榜单快照。
// 它接收一个lifecycle.Handle来管理其生命周期。
func StartBackupScheduler(handle *lifecycle.Handle) {
	defer handle.Close() // 确保在退出时通知管理器
	fmt.Println("榜单快照调度器已启动。")

	for {
		// 使用可中断的休眠来代替ticker，
		// 使循环可以在收到停机信号时立刻从休眠中唤醒并退出。
		if err := handle.Sleep(backupInterval); err != nil {
			fmt.Println("快照调度器: 休眠被中断，正在关闭...")
			return
		}

		if !database.IsRedisHealthy() {
			fmt.Println("快照调度器: 检测到Redis不可用，跳过本次快照。")
			continue
		}

		fmt.Println("快照调度器: 正在执行定时快照...")
		if err := CreateSnapshot(handle.Ctx()); err != nil {
			// 如果错误是由于停机信号导致的，则静默退出
			if err != context.Canceled && err != context.DeadlineExceeded {
				fmt.Printf("快照调度器错误: 执行榜单快照失败: %v\n", err)
			}
		} else {
			fmt.Println("快照调度器: 榜单快照成功。")
		}
	}
}

// CreateSnapshot 串行化地执行一次榜单快照。
func CreateSnapshot(ctx context.Context) error {
	backupMutex.Lock()
	defer backupMutex.Unlock()
	return leaderboard.CreateStandingsSnapshot(ctx)
}

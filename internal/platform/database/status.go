package database

import (
	"fmt"
	"sync"
)

// redisStatus 记录Redis的可用性与最近一次确认的run_id。
// 所有访问都必须经过下面的读写锁。
var redisStatus struct {
	mu             sync.RWMutex
	healthy        bool
	lastKnownRunID string
}

func init() {
	// 启动阶段默认可用，首次健康检查会立刻校正
	redisStatus.healthy = true
}

// IsRedisHealthy 返回当前Redis的健康状态。
func IsRedisHealthy() bool {
	redisStatus.mu.RLock()
	defer redisStatus.mu.RUnlock()
	return redisStatus.healthy
}

// SetInitialRunID 在应用启动时由main调用，记录初始的Redis run_id。
func SetInitialRunID(runID string) {
	redisStatus.mu.Lock()
	defer redisStatus.mu.Unlock()
	redisStatus.lastKnownRunID = runID
}

// UpdateStatus 线程安全地更新健康状态；仅在健康时更新已知run_id。
func UpdateStatus(isHealthy bool, newRunID string) {
	redisStatus.mu.Lock()
	defer redisStatus.mu.Unlock()

	if redisStatus.healthy != isHealthy {
		redisStatus.healthy = isHealthy
		if isHealthy {
			fmt.Println("健康检查: Redis服务状态已更新为 [可用]")
		} else {
			fmt.Println("健康检查警告: Redis服务状态已更新为 [不可用]")
		}
	}

	if isHealthy {
		redisStatus.lastKnownRunID = newRunID
	}
}

// GetLastKnownRunID 线程安全地获取最近一次确认的run_id。
func GetLastKnownRunID() string {
	redisStatus.mu.RLock()
	defer redisStatus.mu.RUnlock()
	return redisStatus.lastKnownRunID
}

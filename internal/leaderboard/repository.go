package leaderboard

import (
	"sync"
)

// --- Redis 键名常量 ---

const (
	// RankingKey 是一个 Redis Sorted Set 的键，存储排行榜排序。
	// Score: 用户的历史总积分
	// Member: 用户的UUID
	RankingKey = "leaderboard:ranking"

	// EntriesKey 是一个 Redis Hash 的键，存储榜单条目的展示数据。
	// Field: 用户的UUID
	// Value: CachedEntry 结构体的JSON序列化字符串
	EntriesKey = "leaderboard:entries"
)

// --- Redis 数据结构 ---

// CachedEntry 定义了在 leaderboard:entries 哈希表中
// 以JSON格式缓存的单个榜单条目。
type CachedEntry struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Points   int    `json:"points"`
	Streak   int    `json:"streak"`
}

// --- 并发控制 ---

// repoMutex 是一个模块内部的、不导出的全局读写锁，
// 用于保护对本模块管理的Redis键的并发访问。
var repoMutex sync.RWMutex

// LockRepository 封装了对模块全局锁的写锁定操作。
func LockRepository() {
	repoMutex.Lock()
}

// UnlockRepository 封装了对模块全局锁的写解锁操作。
func UnlockRepository() {
	repoMutex.Unlock()
}

// RLockRepository 封装了对模块全局锁的读锁定操作。
func RLockRepository() {
	repoMutex.RLock()
}

// RUnlockRepository 封装了对模块全局锁的读解锁操作。
func RUnlockRepository() {
	repoMutex.RUnlock()
}

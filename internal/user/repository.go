package user

import (
	"sync"
)

// --- Redis 键名常量 ---

const (
	// KnownUsersKey 是一个 Redis Set 的键，缓存所有已完成注册的用户UUID。
	KnownUsersKey = "user:known"

	// ProfilesKey 是一个 Redis Hash 的键，缓存用户的展示资料。
	// Field: 用户的UUID
	// Value: Profile 结构体的JSON序列化字符串
	ProfilesKey = "user:profiles"
)

// --- Redis 数据结构 ---

// Profile 定义了在 user:profiles 哈希表中以JSON格式缓存的用户展示资料。
// 排行榜读取路径只依赖这份缓存，不回表查询SQLite。
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
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

package metadata

const (
	// ChallengeStartDateKey 存储本期挑战的起始日期，格式为 "2006-01-02"。
	ChallengeStartDateKey = "challenge_start_date"

	// LastSnapshotTimeKey 存储最近一次排行榜快照的时间，格式为RFC3339。
	LastSnapshotTimeKey = "last_snapshot_time"
)

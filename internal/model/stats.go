package model

import "time"

// AdminStats 管理后台统计快照
type AdminStats struct {
	Users         int64     `json:"users"`
	Posts         int64     `json:"posts"`
	Comments      int64     `json:"comments"`
	Announcements int64     `json:"announcements"`
	Tags          int64     `json:"tags"`
	GeneratedAt   time.Time `json:"generatedAt"`
}

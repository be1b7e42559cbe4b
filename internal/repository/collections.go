package repository

// 集合名称，沿用线上 forumFlareDB 的命名
const (
	UserCollection         = "users"
	PostCollection         = "posts"
	TagCollection          = "tags"
	CommentCollection      = "comments"
	AnnouncementCollection = "announcements"
)

// UpdateResult 更新结果
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

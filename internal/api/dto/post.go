package dto

import (
	"ForumFlare/internal/model"
	"ForumFlare/internal/pkg/consts"
	"math"
	"time"
)

// CreatePostDTO 发帖，作者 email 以令牌为准
type CreatePostDTO struct {
	Title       string     `json:"title" binding:"required" validate:"min=1,max=255"`
	Description string     `json:"description" binding:"required" validate:"min=1,max=10000"`
	AuthorName  string     `json:"authorName" validate:"max=64"`
	AuthorImage string     `json:"authorImage" validate:"omitempty,url"`
	Tags        []string   `json:"tags" validate:"max=10,dive,min=1,max=32"`
	Time        *time.Time `json:"time"`
}

// PostQueryDTO 帖子列表查询
type PostQueryDTO struct {
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
	Tag   string `form:"tag"`
}

// Normalize 修正分页参数：page 从 0 开始且 skip 不溢出，limit 限制在 [1, MaxLimit]
func (q *PostQueryDTO) Normalize() {
	if q.Page < 0 {
		q.Page = consts.DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = consts.DefaultLimit
	}
	if q.Limit > consts.MaxLimit {
		q.Limit = consts.MaxLimit
	}
	// page*limit 不得溢出 int64
	if maxPage := math.MaxInt / consts.MaxLimit; q.Page > maxPage {
		q.Page = maxPage
	}
}

// Skip 跳过条数
func (q *PostQueryDTO) Skip() int64 {
	return int64(q.Page) * int64(q.Limit)
}

// PostListDTO 双排序分页结果
type PostListDTO struct {
	RegularPost []*model.Post `json:"regularPost"`
	PopularPost []*model.Post `json:"popularPost"`
	TotalPost   int64         `json:"totalPost"`
}

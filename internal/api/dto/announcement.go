package dto

// CreateAnnouncementDTO 发布公告
type CreateAnnouncementDTO struct {
	Title       string `json:"title" binding:"required" validate:"min=1,max=255"`
	Description string `json:"description" binding:"required" validate:"min=1,max=5000"`
	AuthorName  string `json:"authorName" validate:"max=64"`
	AuthorImage string `json:"authorImage" validate:"omitempty,url"`
}

package dto

// CreateCommentDTO 发表评论
type CreateCommentDTO struct {
	PostID  string `json:"postId" binding:"required" validate:"hexadecimal,len=24"`
	Name    string `json:"name" validate:"max=64"`
	Comment string `json:"comment" binding:"required" validate:"min=1,max=2000"`
}

// FeedbackDTO 举报反馈
type FeedbackDTO struct {
	Feedback string `json:"feedback" binding:"required" validate:"min=1,max=500"`
}

// ActionDTO 审核动作
type ActionDTO struct {
	Action string `json:"action" binding:"required" validate:"min=1,max=64"`
}

package dto

// TokenRequestDTO 签发令牌
type TokenRequestDTO struct {
	Email string `json:"email" binding:"required" validate:"email"`
	Name  string `json:"name"`
}

// TokenDTO 令牌
type TokenDTO struct {
	Token string `json:"token"`
}

// RegisterUserDTO 注册
type RegisterUserDTO struct {
	Name  string `json:"name" validate:"max=64"`
	Email string `json:"email" binding:"required" validate:"email"`
	Image string `json:"image" validate:"omitempty,url"`
}

// AdminStatusDTO 管理员检查
type AdminStatusDTO struct {
	Admin bool `json:"admin"`
}

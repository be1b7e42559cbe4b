package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"

	BadgeBronze = "bronze"
	BadgeGold   = "gold"
)

// User 用户，email 唯一
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Role      string             `bson:"role" json:"role"`
	Badge     string             `bson:"badge" json:"badge"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserWithPosts 用户及其发布的帖子（按 email 关联）
type UserWithPosts struct {
	User     `bson:",inline"`
	UserPost []*Post `bson:"userPost" json:"userPost"`
}

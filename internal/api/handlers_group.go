package api

import (
	"ForumFlare/internal/api/handler"
	"ForumFlare/internal/api/middleware"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例及鉴权依赖
type HandlersGroup struct {
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	PostHandler         *handler.PostHandler
	CommentHandler      *handler.CommentHandler
	TagHandler          *handler.TagHandler
	AnnouncementHandler *handler.AnnouncementHandler
	PaymentHandler      *handler.PaymentHandler
	AdminHandler        *handler.AdminHandler

	Verifier     middleware.TokenVerifier
	AdminChecker middleware.AdminChecker
}

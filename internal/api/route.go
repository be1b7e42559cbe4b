package api

import (
	"ForumFlare/internal/api/config"
	"ForumFlare/internal/api/middleware"
	"ForumFlare/internal/pkg/logger"
	"ForumFlare/internal/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, serverCfg config.ServerConfig) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(serverCfg.AllowOrigins))
	logger.SetupGin(r)

	authed := middleware.Authenticated(group.Verifier)
	admin := middleware.AdminOnly(group.AdminChecker)
	authOnly := middleware.Chain(authed)
	adminOnly := middleware.Chain(authed, admin)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Forum Flare is Running")
	})
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, "pong")
	})

	// 令牌
	r.POST("/jwt", group.AuthHandler.IssueToken)
	r.POST("/logout", authOnly, group.AuthHandler.Logout)

	// 用户
	r.GET("/users", adminOnly, group.UserHandler.GetAllUsers)
	r.POST("/users", group.UserHandler.Register)
	r.GET("/users/:email", group.UserHandler.GetUserByEmail)
	r.PATCH("/users/:email", group.UserHandler.PromoteBadge)
	r.GET("/user/:email", group.UserHandler.GetUserWithPosts)
	r.PATCH("/users/admin/:id", adminOnly, group.UserHandler.SetAdmin)
	r.GET("/users/admin/:email", middleware.Chain(authed, middleware.SelfOnly("email")), group.UserHandler.CheckAdmin)

	// 帖子与投票
	r.GET("/posts", group.PostHandler.GetPosts)
	r.GET("/postDetails/:id", group.PostHandler.GetPost)
	r.POST("/posts", authOnly, group.PostHandler.CreatePost)
	r.DELETE("/post/:id", authOnly, group.PostHandler.DeletePost)
	r.PATCH("/upvote/:id", authOnly, group.PostHandler.Upvote)
	r.PATCH("/downvote/:id", authOnly, group.PostHandler.Downvote)

	// 标签与公告
	r.GET("/tags", group.TagHandler.GetTags)
	r.GET("/announcement", group.AnnouncementHandler.GetAnnouncements)
	r.GET("/announcement/count", group.AnnouncementHandler.GetAnnouncementCount)
	r.POST("/announcement", adminOnly, group.AnnouncementHandler.CreateAnnouncement)

	// 评论与审核
	r.POST("/comment", authOnly, group.CommentHandler.CreateComment)
	r.GET("/comment", adminOnly, group.CommentHandler.GetModerationQueue)
	r.GET("/comment/:id", group.CommentHandler.GetCommentsByPost)
	r.PATCH("/comments/:id/feedback", authOnly, group.CommentHandler.AttachFeedback)
	r.PATCH("/comments/:id/action", adminOnly, group.CommentHandler.AttachAction)

	// 支付与统计
	r.POST("/create-payment-intent", authOnly, group.PaymentHandler.CreatePaymentIntent)
	r.GET("/admin-stats", adminOnly, group.AdminHandler.GetStats)

	return r
}

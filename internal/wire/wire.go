package wire

import (
	"ForumFlare/internal/api"
	"ForumFlare/internal/api/config"
	"ForumFlare/internal/api/handler"
	"ForumFlare/internal/job"
	"ForumFlare/internal/pkg/cron"
	"ForumFlare/internal/pkg/security"
	"ForumFlare/internal/repository"
	"ForumFlare/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

// BuildApplication 组装仓储、服务与路由，store 为吊销记录与统计缓存的 KV 存储
func BuildApplication(db *mongo.Database, store service.KVStore, gateway service.PaymentGateway, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	tagRepo := repository.NewTagRepo(db)
	announcementRepo := repository.NewAnnouncementRepo(db)

	jwtManager := security.NewJWTManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Second)

	authService := service.NewAuthService(jwtManager, store)
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, userRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	tagService := service.NewTagService(tagRepo)
	announcementService := service.NewAnnouncementService(announcementRepo)
	paymentService := service.NewPaymentService(gateway)
	statsService := service.NewAdminStatsService(userRepo, postRepo, commentRepo, announcementRepo, tagRepo,
		store, time.Duration(cfg.Stats.CacheTTL)*time.Second)

	handlers := &api.HandlersGroup{
		AuthHandler:         handler.NewAuthHandler(authService),
		UserHandler:         handler.NewUserHandler(userService),
		PostHandler:         handler.NewPostHandler(postService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		TagHandler:          handler.NewTagHandler(tagService),
		AnnouncementHandler: handler.NewAnnouncementHandler(announcementService),
		PaymentHandler:      handler.NewPaymentHandler(paymentService),
		AdminHandler:        handler.NewAdminHandler(statsService),
		Verifier:            authService,
		AdminChecker:        userService,
	}

	router := api.SetupRouter(handlers, cfg.Server)

	cronMgr := cron.NewCronManager(cfg.Stats.RefreshSpec, job.NewAdminStatsJob(statsService))

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
	}, nil
}

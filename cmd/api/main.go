package main

import (
	"ForumFlare/internal/api/config"
	"ForumFlare/internal/pkg/cron"
	"ForumFlare/internal/pkg/logger"
	"ForumFlare/internal/pkg/mongo"
	"ForumFlare/internal/pkg/redis"
	"ForumFlare/internal/pkg/stripe"
	"ForumFlare/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// .env 可选，已存在的环境变量优先
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("failed to load .env", "err", err)
	}

	// 加载配置
	if err := config.LoadConfig("./configs"); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger(cfg.Log)

	// Mongo 连接
	mongoConn, err := mongo.InitMongo(cfg.Mongo)
	if err != nil {
		log.Error("Fatal error: failed to create mongo connection", "err", err)
		panic(err)
	}
	log.Info("Pinged your deployment. You successfully connected to MongoDB!")

	// Redis 连接
	rdb, err := redis.InitRedis(cfg.Redis)
	if err != nil {
		log.Error("Fatal error: failed to create redis connection", "err", err)
		panic(err)
	}

	// 依赖注入
	app, err := wire.BuildApplication(mongoConn.DB, redis.NewStore(rdb), stripe.InitStripe(cfg.Stripe), cfg)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	if err = cron.InitCron(app.CronMgr); err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Cron Jobs stopping...")
		app.CronMgr.Stop()
		return nil
	})

	// HTTP 服务器
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		log.Info("Forum Flare is running", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	if err = mongoConn.Close(closeCtx); err != nil {
		log.Error("Mongo disconnect failed", "err", err)
	}
	if err = rdb.Close(); err != nil {
		log.Error("Redis close failed", "err", err)
	}
	log.Info("App exited successfully.")
}

package mongo

import (
	"ForumFlare/internal/api/config"
	"ForumFlare/internal/pkg/logger"
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Conn 进程级 MongoDB 连接，启动时创建，退出时关闭
type Conn struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// InitMongo 建立连接并返回 Database 引用，同时初始化索引
func InitMongo(cfg config.MongoConfig) (*Conn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	// 建立连接
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI()).
		SetServerAPIOptions(serverAPI).
		SetMonitor(logger.NewMongoMonitor()),
	)
	if err != nil {
		return nil, err
	}

	// 检查连通性
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(cfg.Database)
	if err = EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.Info("MongoDB initialized successfully", "db", cfg.Database)
	return &Conn{Client: client, DB: db}, nil
}

// Close 断开连接
func (c *Conn) Close(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Disconnect(ctx)
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// envBindings 与原部署保持一致的环境变量名
var envBindings = map[string]string{
	"server.port":       "PORT",
	"mongo.url":         "MONGO_URL",
	"mongo.host":        "DB_HOST",
	"mongo.user":        "DB_USER",
	"mongo.password":    "DB_PASS",
	"jwt.secret":        "ACCESS_TOKEN_SECRET",
	"stripe.secret_key": "STRIPE_SECRET_KEY",
	"redis.addr":        "REDIS_ADDR",
	"redis.password":    "REDIS_PASSWORD",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("mongo.host", "cluster0.igno3bw.mongodb.net")
	v.SetDefault("mongo.database", "forumFlareDB")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("jwt.ttl", 3600)
	v.SetDefault("log.level", "info")
	v.SetDefault("stats.refresh_spec", "@every 1m")
	v.SetDefault("stats.cache_ttl", 300)
}

// LoadConfig 从配置目录加载配置并填充到 Cfg，配置文件缺失时仅使用默认值与环境变量
func LoadConfig(configPath string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return errors.New("jwt secret is required (ACCESS_TOKEN_SECRET)")
	}

	Cfg = &cfg

	return nil
}

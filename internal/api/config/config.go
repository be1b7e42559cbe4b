package config

import "fmt"

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Redis  RedisConfig  `mapstructure:"redis"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Stripe StripeConfig `mapstructure:"stripe"`
	Log    LogConfig    `mapstructure:"log"`
	Stats  StatsConfig  `mapstructure:"stats"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	AllowOrigins []string `mapstructure:"allow_origins"` // 为空或含 "*" 时放行所有来源
}

// MongoConfig MongoDB 配置，URL 为空时由 Host/User/Password 拼接
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// URI 返回最终用于连接的地址
func (c MongoConfig) URI() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", c.User, c.Password, c.Host)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// JWTConfig 令牌签发配置
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	TTL    int    `mapstructure:"ttl"` // 秒
}

type StripeConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// StatsConfig 管理员统计缓存
type StatsConfig struct {
	RefreshSpec string `mapstructure:"refresh_spec"`
	CacheTTL    int    `mapstructure:"cache_ttl"` // 秒
}

package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTSecret 仅用于本地调试，DEBUG=false 时禁止使用
const DefaultJWTSecret = "your-secret-key-change-in-production"

// Config 应用配置
type Config struct {
	Port           string        `mapstructure:"PORT"`
	DBPath         string        `mapstructure:"DB_PATH"`
	UploadDir      string        `mapstructure:"UPLOAD_DIR"`
	JWTSecret      string        `mapstructure:"JWT_SECRET"`
	Debug          bool          `mapstructure:"DEBUG"`
	MaxUploadBytes int64         `mapstructure:"MAX_UPLOAD_BYTES"` // 上传文件大小上限（字节）
	RateLimit      int           `mapstructure:"RATE_LIMIT"`       // 每个窗口内每个 IP 的最大请求数
	RateWindow     time.Duration `mapstructure:"RATE_WINDOW"`
}

// Load 加载配置
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", ":8080")
	v.SetDefault("DB_PATH", "./data/pace/pace.db")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("DEBUG", false)
	v.SetDefault("MAX_UPLOAD_BYTES", 32<<20) // 32MB
	v.SetDefault("RATE_LIMIT", 60)
	v.SetDefault("RATE_WINDOW", time.Minute)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UsesDefaultSecret reports whether JWT_SECRET was left at its public default
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// Validate rejects configurations that are unsafe to serve with
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.UsesDefaultSecret() && !c.Debug {
		return errors.New("JWT_SECRET is set to the public default; set it or run with DEBUG=true")
	}
	return nil
}

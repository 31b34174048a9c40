package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrConfiguration 标记所有配置加载或校验失败。
var ErrConfiguration = errors.New("configuration error")

const (
	DefaultPort          = "3000"
	DefaultModel         = "gemini-2.0-flash"
	DefaultAPIVersion    = "v1"
	DefaultUpstreamLimit = 30 * time.Second
	DefaultStaticDir     = "public"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "json"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Log    LogConfig
	Static StaticConfig
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr           string   `validate:"required"`
	AllowedOrigins []string `validate:"min=1,dive,required"`
}

// AIConfig 描述 Gemini 上游相关配置。
// APIKey 允许为空：缺失时服务照常启动，由每次请求返回配置错误。
type AIConfig struct {
	APIKey     string
	Model      string        `validate:"required"`
	BaseURL    string        `validate:"omitempty,url"`
	APIVersion string        `validate:"required"`
	Timeout    time.Duration `validate:"min=1ms"`
}

// Enabled 表示是否提供了上游密钥。
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// LogConfig 控制 zap 日志输出。
type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json console"`
}

// StaticConfig 描述聊天界面静态资源目录。
type StaticConfig struct {
	Dir string `validate:"required"`
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	server, err := loadServerConfig(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	cfg := &Config{
		Server: server,
		AI: AIConfig{
			APIKey:     strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
			Model:      strings.TrimSpace(v.GetString("GEMINI_MODEL")),
			BaseURL:    strings.TrimSpace(v.GetString("GEMINI_BASE_URL")),
			APIVersion: strings.TrimSpace(v.GetString("GEMINI_API_VERSION")),
			Timeout:    DefaultUpstreamLimit,
		},
		Log: LogConfig{
			Level:  strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
			Format: strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),
		},
		Static: StaticConfig{
			Dir: strings.TrimSpace(v.GetString("STATIC_DIR")),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("GEMINI_MODEL", DefaultModel)
	v.SetDefault("GEMINI_API_VERSION", DefaultAPIVersion)
	v.SetDefault("GEMINI_BASE_URL", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("LOG_LEVEL", DefaultLogLevel)
	v.SetDefault("LOG_FORMAT", DefaultLogFormat)
	v.SetDefault("STATIC_DIR", DefaultStaticDir)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// loadServerConfig 解析服务器监听地址，裸端口绑定到所有网卡。
func loadServerConfig(v *viper.Viper) (ServerConfig, error) {
	origins := splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	port := strings.TrimSpace(v.GetString("PORT"))
	if port == "" {
		port = DefaultPort
	}

	if strings.Contains(port, ":") {
		// 允许直接传入 ":3000" 或 "127.0.0.1:3000"。
		return ServerConfig{Addr: port, AllowedOrigins: origins}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: "0.0.0.0:" + port, AllowedOrigins: origins}, nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Package config 读取 assetdash 的配置
// 优先级：命令行参数 > 环境变量（ASSETDASH_ 前缀）> 配置文件 > 默认值
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 ASSETDASH_DATA_DIR
const EnvPrefix = "ASSETDASH"

// 配置项名称
const (
	KeyAddress        = "address"
	KeyDataDir        = "data_dir"
	KeyDBPath         = "db_path"
	KeyLoadLatency    = "load_latency"
	KeySearchDebounce = "search_debounce"
	KeyPageSize       = "page_size"
	KeyRevealStep     = "reveal_step"
	KeyLogLevel       = "log_level"
)

type Config struct {
	// Address 是 HTTP 服务绑定地址
	Address string

	// DataDir 是数据目录，存放快照数据库和 TUI 日志
	// 默认：~/.local/share/assetdash
	DataDir string

	// DBPath 是快照数据库路径，默认 <DataDir>/assetdash.db
	DBPath string

	// LoadLatency 是每次加载前的固定延迟
	LoadLatency time.Duration

	// SearchDebounce 是交互界面中搜索输入的防抖间隔
	SearchDebounce time.Duration

	PageSize   int
	RevealStep int
	LogLevel   string
}

// NewViper 创建带默认值和环境变量绑定的 viper 实例
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAddress, "0.0.0.0:7777")
	v.SetDefault(KeyDataDir, defaultDataDir())
	v.SetDefault(KeyDBPath, "")
	v.SetDefault(KeyLoadLatency, 600*time.Millisecond)
	v.SetDefault(KeySearchDebounce, 300*time.Millisecond)
	v.SetDefault(KeyPageSize, 10)
	v.SetDefault(KeyRevealStep, 20)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// New 使用默认值和环境变量创建配置
func New() (*Config, error) {
	return Load(NewViper(), "")
}

// Load 读取配置文件（可选）并生成配置
// configFile 为空时在用户主目录和当前目录查找 .assetdash.yaml，找不到不算错误
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".assetdash")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Address:        v.GetString(KeyAddress),
		DataDir:        v.GetString(KeyDataDir),
		DBPath:         v.GetString(KeyDBPath),
		LoadLatency:    v.GetDuration(KeyLoadLatency),
		SearchDebounce: v.GetDuration(KeySearchDebounce),
		PageSize:       v.GetInt(KeyPageSize),
		RevealStep:     v.GetInt(KeyRevealStep),
		LogLevel:       v.GetString(KeyLogLevel),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "assetdash.db")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("address must not be empty")
	}
	if c.DataDir == "" {
		return errors.New("data_dir must not be empty")
	}
	if c.LoadLatency < 0 {
		return fmt.Errorf("load_latency must not be negative: %s", c.LoadLatency)
	}
	if c.SearchDebounce < 0 {
		return fmt.Errorf("search_debounce must not be negative: %s", c.SearchDebounce)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive: %d", c.PageSize)
	}
	if c.RevealStep <= 0 {
		return fmt.Errorf("reveal_step must be positive: %d", c.RevealStep)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level 解析日志级别
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// defaultDataDir 获取默认数据目录
func defaultDataDir() string {
	// 1. 使用用户主目录下的 .local/share/assetdash
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "assetdash")
	}

	// 2. 如果无法获取主目录，使用当前目录下的 data
	return filepath.Join(".", "data")
}

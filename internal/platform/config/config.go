package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/ogurasousui/edu-centre-directory/internal/platform/logger"
)

const (
	defaultListenAddr = ":50051"
	defaultPath       = "assets/local.yaml"
	pathEnv           = "CONFIG_PATH"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Seed   SeedConfig   `yaml:"seed"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr" env:"LISTEN_ADDR" validate:"hostname_port"`
}

// LogConfig はログ出力に関する設定です。
type LogConfig struct {
	LevelRaw string       `yaml:"level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	Pretty   bool         `yaml:"pretty" env:"LOG_PRETTY"`
	Level    logger.Level `yaml:"-"`
}

// SeedConfig は起動時に投入するデモデータの設定です。
type SeedConfig struct {
	DemoData bool `yaml:"demo_data" env:"SEED_DEMO_DATA"`
}

// ResolvePath は設定ファイルのパスを決定します。
// 引数、環境変数 CONFIG_PATH、既定値の順に採用します。
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(pathEnv); p != "" {
		return p
	}
	return defaultPath
}

// Load は指定されたパスから設定ファイルを読み込み、環境変数で上書きします。
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = defaultListenAddr
	}
	c.Log.LevelRaw = strings.ToLower(strings.TrimSpace(c.Log.LevelRaw))

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}

	c.Log.Level = logger.InfoLevel
	if c.Log.LevelRaw != "" {
		c.Log.Level = logger.Level(c.Log.LevelRaw)
	}

	return nil
}

// Logger はログ設定を logger.Config に変換します。
func (l LogConfig) Logger() logger.Config {
	return logger.Config{Level: l.Level, Pretty: l.Pretty}
}

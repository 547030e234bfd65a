// Package config はアプリケーション設定の読み込みを提供します
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"FileStamp/internal/usecase/report"
)

const (
	// AppName は設定ファイル名と環境変数の接頭辞に使う名前です
	AppName = "filestamp"

	DefaultLogLevel     = "info"
	DefaultWindowWidth  = 480
	DefaultWindowHeight = 200
)

// Config はアプリケーション設定を表す構造体です
type Config struct {
	// LogLevel は出力するログレベルの下限を表します
	LogLevel string `mapstructure:"log_level"`
	// WindowWidth はウィンドウの幅を表します
	WindowWidth float32 `mapstructure:"window_width"`
	// WindowHeight はウィンドウの高さを表します
	WindowHeight float32 `mapstructure:"window_height"`
	// DisplayLayout は更新日時の表示形式を表します
	DisplayLayout string `mapstructure:"display_layout"`
	// UTC は更新日時をUTCで表示するかどうかを示します
	UTC bool `mapstructure:"utc"`
}

// Load は設定を読み込みます。
// path が空の場合はユーザー設定ディレクトリの filestamp.toml を探し、見つからなければ既定値を使います。
// FILESTAMP_ で始まる環境変数はファイルの値より優先されます。
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("window_width", DefaultWindowWidth)
	v.SetDefault("window_height", DefaultWindowHeight)
	v.SetDefault("display_layout", report.DefaultLayout)
	v.SetDefault("utc", false)

	v.SetEnvPrefix(AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("toml")
		if configDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(configDir, AppName))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定の解析に失敗しました: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate は設定値が有効であることを確認します
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("ウィンドウサイズが不正です: %vx%v", c.WindowWidth, c.WindowHeight)
	}
	if c.DisplayLayout == "" {
		return fmt.Errorf("表示形式が指定されていません")
	}
	return nil
}

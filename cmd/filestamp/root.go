package main

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"FileStamp/internal/config"
	"FileStamp/internal/gui"
	"FileStamp/internal/infrastructure/filesystem"
	"FileStamp/internal/infrastructure/logging"
	"FileStamp/internal/interface/bridge"
	"FileStamp/internal/interface/ui"
	"FileStamp/internal/usecase/report"
)

// appID はFyneアプリケーションの識別子です
const appID = "io.filestamp.app"

// services はコマンド間で共有する依存関係です
type services struct {
	cfg       *config.Config
	logger    *logging.JSONLogger
	bridge    *bridge.Bridge
	formatter *report.Formatter
}

// newServices は設定を読み込み、ロガーとブリッジを初期化します
func newServices(configPath string, logOutput io.Writer) (*services, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	// ロガーの初期化
	logger := logging.NewJSONLogger(logOutput)
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	// 更新日時クエリをブリッジに登録
	query := filesystem.NewQuery(logger)

	return &services{
		cfg:       cfg,
		logger:    logger,
		bridge:    bridge.NewDefault(query, logger),
		formatter: report.NewFormatter(cfg.DisplayLayout, cfg.UTC),
	}, nil
}

func newRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "filestamp",
		Short:         "ファイルの最終更新日時を確認するデスクトップアプリケーション",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServices(configPath, cmd.ErrOrStderr())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "エラー: %v\n", err)
				return err
			}

			view := gui.NewView(svc.bridge, ui.NewFilePicker(ui.NonEmptyPath), svc.formatter, svc.logger)
			svc.logger.Log("INFO", "ウィンドウを表示します", nil)
			gui.Run(app.NewWithID(appID), view, svc.cfg)
			svc.logger.Log("INFO", "処理が完了しました", nil)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "設定ファイルのパス（既定: ユーザー設定ディレクトリの filestamp.toml）")
	rootCmd.AddCommand(newQueryCommand(&configPath))

	return rootCmd
}

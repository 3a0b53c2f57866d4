package assetdash

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jimyag/assetdash/internal/assetdash/config"
	"github.com/jimyag/assetdash/internal/assetdash/tui"
)

// TUILogFile 终端界面的日志文件名，位于数据目录下
const TUILogFile = "assetdash-tui.log"

// RunTUI 启动终端界面，日志写入数据目录下的文件以免破坏界面
func RunTUI(ctx context.Context, cfg *config.Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(cfg.DataDir, TUILogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	logger, err := NewLogger(cfg, f)
	if err != nil {
		return err
	}

	repo, services, err := NewServices(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close snapshot store")
		}
	}()

	logger.Info().Str("db_path", cfg.DBPath).Msg("Starting terminal dashboard")
	return tui.Run(logger.WithContext(ctx), services, tui.Options{
		SearchDebounce: cfg.SearchDebounce,
		PageSize:       cfg.PageSize,
		RevealStep:     cfg.RevealStep,
	})
}

// Package assetdash 提供 assetdash 服务器的主入口和初始化逻辑
package assetdash

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jimmicro/grace"
	"github.com/jimyag/assetdash/internal/assetdash/api"
	"github.com/jimyag/assetdash/internal/assetdash/config"
	"github.com/jimyag/assetdash/internal/assetdash/repository"
	"github.com/jimyag/assetdash/internal/assetdash/service"
	"github.com/rs/zerolog"
)

type Server struct {
	cfg      *config.Config
	repo     *repository.Repository
	services *service.Services
	api      *api.API
}

// NewLogger 创建根 logger 并设置为 zerolog 的默认 context logger
func NewLogger(cfg *config.Config, w io.Writer) (zerolog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return zerolog.Nop(), err
	}
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger, nil
}

// NewServices 打开快照数据库并创建所有服务
func NewServices(cfg *config.Config) (*repository.Repository, *service.Services, error) {
	repo, err := repository.New(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open snapshot store: %w", err)
	}
	services := service.New(repo, service.Options{
		LoadLatency: cfg.LoadLatency,
		PageSize:    cfg.PageSize,
		RevealStep:  cfg.RevealStep,
	})
	return repo, services, nil
}

func New(cfg *config.Config) (*Server, error) {
	logger, err := NewLogger(cfg, os.Stdout)
	if err != nil {
		return nil, err
	}

	// 1. 打开快照数据库并创建服务
	repo, services, err := NewServices(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("db_path", cfg.DBPath).Msg("Snapshot store opened")

	// 2. 创建 API
	apiInstance := api.New(services, cfg.Address, logger)

	return &Server{
		cfg:      cfg,
		repo:     repo,
		services: services,
		api:      apiInstance,
	}, nil
}

func (s *Server) Run(ctx context.Context) error {
	// 使用 grace.Shepherd 管理服务生命周期
	services := []grace.Grace{
		s.api,
	}

	shepherd := grace.NewShepherd(
		services,
		grace.WithTimeout(30*time.Second),
		grace.WithLogger(&zerologLogger{}),
	)

	shepherd.Start(ctx)
	return s.repo.Close()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.api.Shutdown(ctx); err != nil {
		return err
	}
	return s.repo.Close()
}

// Name 实现 grace.Grace 接口
func (s *Server) Name() string {
	return "assetdash Server"
}

// zerologLogger 实现 grace.Logger 接口
type zerologLogger struct{}

func (l *zerologLogger) Info(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Info()
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}

func (l *zerologLogger) Error(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Error()
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}

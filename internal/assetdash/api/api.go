// Package api 提供 HTTP JSON 接口和内嵌的前端页面
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/assetdash/internal/assetdash/service"
	"github.com/jimyag/assetdash/pkg/ginx"
	"github.com/jimyag/assetdash/pkg/idgen"
	"github.com/rs/zerolog"
)

// API HTTP 服务
type API struct {
	engine     *gin.Engine
	server     *http.Server
	frontendFS http.FileSystem

	certificate    *Certificate
	sshKey         *SSHKey
	codeSigningKey *CodeSigningKey
	auditLog       *AuditLog
	loadState      *LoadState
}

// New 创建 API 服务并注册所有路由
func New(services *service.Services, address string, logger zerolog.Logger) *API {
	engine := gin.New()
	// 让 zerolog.Ctx(*gin.Context) 能取到请求上下文中的 logger
	engine.ContextWithFallback = true
	engine.Use(
		gin.Recovery(),
		ginx.RequestID(idgen.GenerateRequestID),
		requestLogger(logger),
	)

	a := &API{
		engine:         engine,
		certificate:    NewCertificate(services.Certificate),
		sshKey:         NewSSHKey(services.SSHKey),
		codeSigningKey: NewCodeSigningKey(services.CodeSigningKey),
		auditLog:       NewAuditLog(services.AuditLog),
		loadState:      NewLoadState(services),
	}

	group := engine.Group("/api")
	a.certificate.RegisterRoutes(group)
	a.sshKey.RegisterRoutes(group)
	a.codeSigningKey.RegisterRoutes(group)
	a.auditLog.RegisterRoutes(group)
	a.loadState.RegisterRoutes(group)
	a.mountFrontend()

	a.server = &http.Server{
		Addr:              address,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return a
}

// Handler 返回 HTTP handler
func (a *API) Handler() http.Handler {
	return a.engine
}

// Name 实现 grace.Grace 接口
func (a *API) Name() string {
	return "API Server"
}

// Run 启动 HTTP 服务，Shutdown 之后正常返回
func (a *API) Run(ctx context.Context) error {
	zerolog.Ctx(ctx).Info().Str("address", a.server.Addr).Msg("API server listening")
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown 优雅关闭 HTTP 服务
func (a *API) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// requestLogger 把带 request_id 的 logger 放进请求上下文，并在请求结束后记录访问日志
func requestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		logger := base.With().Str("request_id", ginx.GetRequestID(ctx)).Logger()
		ctx.Request = ctx.Request.WithContext(logger.WithContext(ctx.Request.Context()))

		ctx.Next()

		event := logger.Info()
		if ctx.Writer.Status() >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Request handled")
	}
}

package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/pkg/ginx"
	"github.com/rs/zerolog"
)

// AuditLogServiceInterface 定义审计日志服务的接口
type AuditLogServiceInterface interface {
	DescribeAuditLogs(ctx context.Context, req *entity.DescribeAuditLogsRequest) (*entity.DescribeAuditLogsResponse, error)
	ListAuditActionTypes(ctx context.Context) (*entity.ListAuditActionTypesResponse, error)
}

type AuditLog struct {
	auditLogService AuditLogServiceInterface
}

func NewAuditLog(auditLogService AuditLogServiceInterface) *AuditLog {
	return &AuditLog{
		auditLogService: auditLogService,
	}
}

func (a *AuditLog) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/describe-audit-logs", ginx.Adapt5(a.DescribeAuditLogs))
	router.POST("/list-audit-action-types", ginx.Adapt3(a.ListAuditActionTypes))
}

func (a *AuditLog) DescribeAuditLogs(ctx *gin.Context, req *entity.DescribeAuditLogsRequest) (*entity.DescribeAuditLogsResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Interface("request", req).
		Msg("DescribeAuditLogs called")

	resp, err := a.auditLogService.DescribeAuditLogs(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to describe audit logs")
		return nil, err
	}
	return resp, nil
}

func (a *AuditLog) ListAuditActionTypes(ctx *gin.Context) (*entity.ListAuditActionTypesResponse, error) {
	resp, err := a.auditLogService.ListAuditActionTypes(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Failed to list audit action types")
		return nil, err
	}
	return resp, nil
}

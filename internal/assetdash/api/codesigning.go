package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/pkg/ginx"
	"github.com/rs/zerolog"
)

// CodeSigningKeyServiceInterface 定义代码签名密钥服务的接口
type CodeSigningKeyServiceInterface interface {
	DescribeCodeSigningKeys(ctx context.Context, req *entity.DescribeCodeSigningKeysRequest) (*entity.DescribeCodeSigningKeysResponse, error)
	DescribeCodeSigningKey(ctx context.Context, req *entity.DescribeCodeSigningKeyRequest) (*entity.DescribeCodeSigningKeyResponse, error)
	GetViewMode(ctx context.Context) (*entity.ViewModeResponse, error)
	SetViewMode(ctx context.Context, req *entity.SetViewModeRequest) (*entity.ViewModeResponse, error)
}

type CodeSigningKey struct {
	codeSigningKeyService CodeSigningKeyServiceInterface
}

func NewCodeSigningKey(codeSigningKeyService CodeSigningKeyServiceInterface) *CodeSigningKey {
	return &CodeSigningKey{
		codeSigningKeyService: codeSigningKeyService,
	}
}

func (c *CodeSigningKey) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/describe-code-signing-keys", ginx.Adapt5(c.DescribeCodeSigningKeys))
	router.POST("/describe-code-signing-key", ginx.Adapt5(c.DescribeCodeSigningKey))
	router.POST("/get-view-mode", ginx.Adapt3(c.GetViewMode))
	router.POST("/set-view-mode", ginx.Adapt5(c.SetViewMode))
}

func (c *CodeSigningKey) DescribeCodeSigningKeys(ctx *gin.Context, req *entity.DescribeCodeSigningKeysRequest) (*entity.DescribeCodeSigningKeysResponse, error) {
	resp, err := c.codeSigningKeyService.DescribeCodeSigningKeys(ctx, req)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Failed to describe code-signing keys")
		return nil, err
	}
	return resp, nil
}

func (c *CodeSigningKey) DescribeCodeSigningKey(ctx *gin.Context, req *entity.DescribeCodeSigningKeyRequest) (*entity.DescribeCodeSigningKeyResponse, error) {
	resp, err := c.codeSigningKeyService.DescribeCodeSigningKey(ctx, req)
	if err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("code_signing_key_id", req.CodeSigningKeyID).
			Msg("Failed to describe code-signing key")
		return nil, err
	}
	return resp, nil
}

func (c *CodeSigningKey) GetViewMode(ctx *gin.Context) (*entity.ViewModeResponse, error) {
	return c.codeSigningKeyService.GetViewMode(ctx)
}

func (c *CodeSigningKey) SetViewMode(ctx *gin.Context, req *entity.SetViewModeRequest) (*entity.ViewModeResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("view_mode", string(req.ViewMode)).
		Msg("SetViewMode called")

	resp, err := c.codeSigningKeyService.SetViewMode(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set view mode")
		return nil, err
	}
	return resp, nil
}

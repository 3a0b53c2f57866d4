package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/pkg/ginx"
	"github.com/rs/zerolog"
)

// SSHKeyServiceInterface 定义 SSH 密钥服务的接口
type SSHKeyServiceInterface interface {
	DescribeSSHKeys(ctx context.Context, req *entity.DescribeSSHKeysRequest) (*entity.DescribeSSHKeysResponse, error)
	DescribeSSHKey(ctx context.Context, req *entity.DescribeSSHKeyRequest) (*entity.DescribeSSHKeyResponse, error)
}

type SSHKey struct {
	sshKeyService SSHKeyServiceInterface
}

func NewSSHKey(sshKeyService SSHKeyServiceInterface) *SSHKey {
	return &SSHKey{
		sshKeyService: sshKeyService,
	}
}

func (s *SSHKey) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/describe-ssh-keys", ginx.Adapt5(s.DescribeSSHKeys))
	router.POST("/describe-ssh-key", ginx.Adapt5(s.DescribeSSHKey))
}

func (s *SSHKey) DescribeSSHKeys(ctx *gin.Context, req *entity.DescribeSSHKeysRequest) (*entity.DescribeSSHKeysResponse, error) {
	resp, err := s.sshKeyService.DescribeSSHKeys(ctx, req)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Failed to describe SSH keys")
		return nil, err
	}
	return resp, nil
}

func (s *SSHKey) DescribeSSHKey(ctx *gin.Context, req *entity.DescribeSSHKeyRequest) (*entity.DescribeSSHKeyResponse, error) {
	resp, err := s.sshKeyService.DescribeSSHKey(ctx, req)
	if err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("ssh_key_id", req.SSHKeyID).
			Msg("Failed to describe SSH key")
		return nil, err
	}
	return resp, nil
}

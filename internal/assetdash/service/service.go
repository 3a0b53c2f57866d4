// Package service 提供业务逻辑层的服务实现
// 每种记录由一个服务持有内存中的完整集合，并通过快照存储持久化
package service

import (
	"context"
	"time"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/internal/assetdash/repository"
	"github.com/jimyag/assetdash/internal/assetdash/snapshot"
)

// Options 服务配置
type Options struct {
	LoadLatency time.Duration // 每次加载前的固定延迟
	PageSize    int           // 证书列表默认每页条数
	RevealStep  int           // 审计日志每次增量展示的条数
}

// Services 所有服务的集合
type Services struct {
	Certificate    *CertificateService
	SSHKey         *SSHKeyService
	CodeSigningKey *CodeSigningKeyService
	AuditLog       *AuditLogService
}

// New 创建所有服务，共享同一个快照存储
func New(repo *repository.Repository, opts Options) *Services {
	store := snapshot.NewStore(repository.NewSnapshotRepository(repo.DB()))
	return &Services{
		Certificate:    NewCertificateService(store, opts.LoadLatency, opts.PageSize),
		SSHKey:         NewSSHKeyService(store, opts.LoadLatency),
		CodeSigningKey: NewCodeSigningKeyService(store, opts.LoadLatency),
		AuditLog:       NewAuditLogService(store, opts.LoadLatency, opts.RevealStep),
	}
}

// DescribeLoadStates 返回每种记录的加载状态
func (s *Services) DescribeLoadStates(_ context.Context) (*entity.DescribeLoadStatesResponse, error) {
	return &entity.DescribeLoadStatesResponse{
		States: []entity.LoadState{
			s.Certificate.LoadState(),
			s.SSHKey.LoadState(),
			s.CodeSigningKey.LoadState(),
			s.AuditLog.LoadState(),
		},
	}, nil
}

package service

import (
	"context"
	"time"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/internal/assetdash/loader"
	"github.com/jimyag/assetdash/internal/assetdash/sampledata"
	"github.com/jimyag/assetdash/internal/assetdash/snapshot"
	"github.com/jimyag/assetdash/pkg/apierror"
	"github.com/jimyag/assetdash/pkg/listview"
)

// SSHKeyService SSH 密钥服务
type SSHKeyService struct {
	keys     *collection[entity.SSHKey]
	pipeline listview.Pipeline[entity.SSHKey]
}

// NewSSHKeyService 创建 SSH 密钥服务
func NewSSHKeyService(store *snapshot.Store, latency time.Duration) *SSHKeyService {
	l := loader.New[entity.SSHKey](store, entity.KindSSHKeys, sampledata.SSHKeys, latency)
	return &SSHKeyService{
		keys:     newCollection(l, func(k entity.SSHKey) string { return k.ID }),
		pipeline: SSHKeyPipeline(),
	}
}

// DescribeSSHKeys 搜索、过滤并按信任等级排序，不分页
func (s *SSHKeyService) DescribeSSHKeys(ctx context.Context, req *entity.DescribeSSHKeysRequest) (*entity.DescribeSSHKeysResponse, error) {
	order, err := listview.ParseSortOrder(req.SortOrder, SSHKeyDefaultOrder)
	if err != nil {
		return nil, apierror.InvalidParameter("%v", err)
	}
	items, err := s.keys.get(ctx)
	if err != nil {
		return nil, err
	}

	filtered := s.pipeline.Apply(items, listview.Query[entity.SSHKey]{
		Search:  req.Search,
		Filters: []listview.Predicate[entity.SSHKey]{SSHKeyTrustFilter(req.TrustLevel)},
		Order:   order,
	})
	return &entity.DescribeSSHKeysResponse{
		SSHKeys:    filtered,
		TotalCount: len(filtered),
	}, nil
}

// DescribeSSHKey 查询单个 SSH 密钥
func (s *SSHKeyService) DescribeSSHKey(ctx context.Context, req *entity.DescribeSSHKeyRequest) (*entity.DescribeSSHKeyResponse, error) {
	key, found, err := s.keys.find(ctx, req.SSHKeyID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apierror.NotFound(apierror.ErrSSHKeyNotFound, "SSH key", req.SSHKeyID)
	}
	return &entity.DescribeSSHKeyResponse{SSHKey: key}, nil
}

// ListSSHKeys 返回完整集合的拷贝
func (s *SSHKeyService) ListSSHKeys(ctx context.Context) ([]entity.SSHKey, error) {
	return s.keys.clone(ctx)
}

// LoadState 加载状态
func (s *SSHKeyService) LoadState() entity.LoadState {
	return s.keys.state()
}

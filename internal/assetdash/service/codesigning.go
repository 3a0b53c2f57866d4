package service

import (
	"context"
	"errors"
	"time"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/internal/assetdash/loader"
	"github.com/jimyag/assetdash/internal/assetdash/sampledata"
	"github.com/jimyag/assetdash/internal/assetdash/snapshot"
	"github.com/jimyag/assetdash/pkg/apierror"
	"github.com/jimyag/assetdash/pkg/listview"
	"github.com/rs/zerolog"
)

// ViewModeSlot 代码签名页面展示方式的快照槽位
const ViewModeSlot = "code_signing_view_mode"

// CodeSigningKeyService 代码签名密钥服务
type CodeSigningKeyService struct {
	keys     *collection[entity.CodeSigningKey]
	pipeline listview.Pipeline[entity.CodeSigningKey]
	viewMode snapshot.Slot[entity.ViewMode]
}

// NewCodeSigningKeyService 创建代码签名密钥服务
func NewCodeSigningKeyService(store *snapshot.Store, latency time.Duration) *CodeSigningKeyService {
	l := loader.New[entity.CodeSigningKey](store, entity.KindCodeSigningKeys, sampledata.CodeSigningKeys, latency)
	return &CodeSigningKeyService{
		keys:     newCollection(l, func(k entity.CodeSigningKey) string { return k.ID }),
		pipeline: CodeSigningKeyPipeline(),
		viewMode: snapshot.NewSlot[entity.ViewMode](store, ViewModeSlot),
	}
}

// DescribeCodeSigningKeys 搜索、过滤并按最近使用时间排序，同时返回当前展示方式
func (s *CodeSigningKeyService) DescribeCodeSigningKeys(ctx context.Context, req *entity.DescribeCodeSigningKeysRequest) (*entity.DescribeCodeSigningKeysResponse, error) {
	order, err := listview.ParseSortOrder(req.SortOrder, CodeSigningKeyDefaultOrder)
	if err != nil {
		return nil, apierror.InvalidParameter("%v", err)
	}
	items, err := s.keys.get(ctx)
	if err != nil {
		return nil, err
	}

	filtered := s.pipeline.Apply(items, listview.Query[entity.CodeSigningKey]{
		Search:  req.Search,
		Filters: []listview.Predicate[entity.CodeSigningKey]{CodeSigningKeyProtectionFilter(req.ProtectionLevel)},
		Order:   order,
	})
	mode, err := s.GetViewMode(ctx)
	if err != nil {
		return nil, err
	}
	return &entity.DescribeCodeSigningKeysResponse{
		CodeSigningKeys: filtered,
		TotalCount:      len(filtered),
		ViewMode:        mode.ViewMode,
	}, nil
}

// DescribeCodeSigningKey 查询单个代码签名密钥
func (s *CodeSigningKeyService) DescribeCodeSigningKey(ctx context.Context, req *entity.DescribeCodeSigningKeyRequest) (*entity.DescribeCodeSigningKeyResponse, error) {
	key, found, err := s.keys.find(ctx, req.CodeSigningKeyID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apierror.NotFound(apierror.ErrCodeSigningKeyNotFound, "code-signing key", req.CodeSigningKeyID)
	}
	return &entity.DescribeCodeSigningKeyResponse{CodeSigningKey: key}, nil
}

// GetViewMode 读取展示方式，没有保存过或内容非法时为 table
func (s *CodeSigningKeyService) GetViewMode(ctx context.Context) (*entity.ViewModeResponse, error) {
	mode, err := s.viewMode.Load(ctx)
	switch {
	case err == nil && mode.Valid():
		return &entity.ViewModeResponse{ViewMode: mode}, nil
	case err == nil, errors.Is(err, snapshot.ErrNotFound):
	case errors.Is(err, snapshot.ErrCorrupt):
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Ignoring unreadable view mode")
	default:
		return nil, apierror.Internal("Failed to read view mode", err)
	}
	return &entity.ViewModeResponse{ViewMode: entity.ViewModeTable}, nil
}

// SetViewMode 保存展示方式
func (s *CodeSigningKeyService) SetViewMode(ctx context.Context, req *entity.SetViewModeRequest) (*entity.ViewModeResponse, error) {
	if !req.ViewMode.Valid() {
		return nil, apierror.InvalidParameter("invalid viewMode %q, supported: table, grid", req.ViewMode)
	}
	if err := s.viewMode.Save(ctx, req.ViewMode); err != nil {
		return nil, apierror.Internal("Failed to save view mode", err)
	}
	zerolog.Ctx(ctx).Info().Str("view_mode", string(req.ViewMode)).Msg("View mode updated")
	return &entity.ViewModeResponse{ViewMode: req.ViewMode}, nil
}

// ListCodeSigningKeys 返回完整集合的拷贝
func (s *CodeSigningKeyService) ListCodeSigningKeys(ctx context.Context) ([]entity.CodeSigningKey, error) {
	return s.keys.clone(ctx)
}

// LoadState 加载状态
func (s *CodeSigningKeyService) LoadState() entity.LoadState {
	return s.keys.state()
}

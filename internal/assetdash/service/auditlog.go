package service

import (
	"context"
	"slices"
	"time"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/internal/assetdash/loader"
	"github.com/jimyag/assetdash/internal/assetdash/sampledata"
	"github.com/jimyag/assetdash/internal/assetdash/snapshot"
	"github.com/jimyag/assetdash/pkg/apierror"
	"github.com/jimyag/assetdash/pkg/listview"
)

// DefaultRevealStep 审计日志每次增量展示的条数
const DefaultRevealStep = 20

// AuditLogService 审计日志服务
type AuditLogService struct {
	logs     *collection[entity.AuditLog]
	pipeline listview.Pipeline[entity.AuditLog]
	step     int
}

// NewAuditLogService 创建审计日志服务
func NewAuditLogService(store *snapshot.Store, latency time.Duration, step int) *AuditLogService {
	l := loader.New[entity.AuditLog](store, entity.KindAuditLogs, sampledata.AuditLogs, latency)
	if step <= 0 {
		step = DefaultRevealStep
	}
	return &AuditLogService{
		logs:     newCollection(l, func(a entity.AuditLog) string { return a.ID }),
		pipeline: AuditLogPipeline(),
		step:     step,
	}
}

// RevealStep 每次增量展示的条数
func (s *AuditLogService) RevealStep() int { return s.step }

// DescribeAuditLogs 搜索、按操作类型和日期范围过滤、按时间排序，返回前 VisibleCount 条
func (s *AuditLogService) DescribeAuditLogs(ctx context.Context, req *entity.DescribeAuditLogsRequest) (*entity.DescribeAuditLogsResponse, error) {
	order, err := listview.ParseSortOrder(req.SortOrder, AuditLogDefaultOrder)
	if err != nil {
		return nil, apierror.InvalidParameter("%v", err)
	}
	from, to, err := req.DateRange()
	if err != nil {
		return nil, err
	}
	items, err := s.logs.get(ctx)
	if err != nil {
		return nil, err
	}

	filtered := s.pipeline.Apply(items, listview.Query[entity.AuditLog]{
		Search: req.Search,
		Filters: []listview.Predicate[entity.AuditLog]{
			AuditLogActionFilter(req.ActionType),
			AuditLogDateFilter(from, to),
		},
		Order: order,
	})
	visible := listview.RevealCount(len(filtered), req.VisibleCount, s.step)
	return &entity.DescribeAuditLogsResponse{
		AuditLogs:    filtered[:visible],
		VisibleCount: visible,
		TotalCount:   len(filtered),
		HasMore:      visible < len(filtered),
		RevealStep:   s.step,
	}, nil
}

// ListAuditActionTypes 返回出现过的操作类型，按字母排序
func (s *AuditLogService) ListAuditActionTypes(ctx context.Context) (*entity.ListAuditActionTypesResponse, error) {
	items, err := s.logs.get(ctx)
	if err != nil {
		return nil, err
	}
	return &entity.ListAuditActionTypesResponse{ActionTypes: ActionTypes(items)}, nil
}

// ActionTypes 集合中出现过的操作类型，去重并排序
func ActionTypes(logs []entity.AuditLog) []string {
	seen := make(map[string]struct{}, len(logs))
	types := make([]string, 0)
	for _, l := range logs {
		if _, ok := seen[l.ActionType]; ok {
			continue
		}
		seen[l.ActionType] = struct{}{}
		types = append(types, l.ActionType)
	}
	slices.Sort(types)
	return types
}

// ListAuditLogs 返回完整集合的拷贝
func (s *AuditLogService) ListAuditLogs(ctx context.Context) ([]entity.AuditLog, error) {
	return s.logs.clone(ctx)
}

// LoadState 加载状态
func (s *AuditLogService) LoadState() entity.LoadState {
	return s.logs.state()
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/internal/assetdash/loader"
	"github.com/jimyag/assetdash/internal/assetdash/sampledata"
	"github.com/jimyag/assetdash/internal/assetdash/snapshot"
	"github.com/jimyag/assetdash/pkg/apierror"
	"github.com/jimyag/assetdash/pkg/listview"
	"github.com/rs/zerolog"
)

// CertificateService 证书服务
type CertificateService struct {
	certs    *collection[entity.Certificate]
	pipeline listview.Pipeline[entity.Certificate]
	pageSize int
}

// NewCertificateService 创建证书服务
func NewCertificateService(store *snapshot.Store, latency time.Duration, pageSize int) *CertificateService {
	l := loader.New[entity.Certificate](store, entity.KindCertificates, sampledata.Certificates, latency)
	if pageSize <= 0 {
		pageSize = listview.DefaultPageSize
	}
	return &CertificateService{
		certs:    newCollection(l, func(c entity.Certificate) string { return c.ID }),
		pipeline: CertificatePipeline(),
		pageSize: pageSize,
	}
}

// DescribeCertificates 搜索、过滤、排序并分页
// 页码超出范围时返回最后一页
func (s *CertificateService) DescribeCertificates(ctx context.Context, req *entity.DescribeCertificatesRequest) (*entity.DescribeCertificatesResponse, error) {
	order, err := listview.ParseSortOrder(req.SortOrder, CertificateDefaultOrder)
	if err != nil {
		return nil, apierror.InvalidParameter("%v", err)
	}
	items, err := s.certs.get(ctx)
	if err != nil {
		return nil, err
	}

	filtered := s.pipeline.Apply(items, listview.Query[entity.Certificate]{
		Search:  req.Search,
		Filters: []listview.Predicate[entity.Certificate]{CertificateStatusFilter(req.Status)},
		Order:   order,
	})

	size := req.PageSize
	if size <= 0 {
		size = s.pageSize
	}
	start, end, page := listview.PageWindow(len(filtered), req.Page, size)

	zerolog.Ctx(ctx).Debug().
		Str("search", req.Search).
		Str("status", req.Status).
		Int("matched", len(filtered)).
		Int("page", page).
		Msg("Describe certificates")

	return &entity.DescribeCertificatesResponse{
		Certificates: filtered[start:end],
		Page:         page,
		PageSize:     size,
		TotalPages:   listview.TotalPages(len(filtered), size),
		TotalCount:   len(filtered),
	}, nil
}

// DescribeCertificate 查询单个证书
func (s *CertificateService) DescribeCertificate(ctx context.Context, req *entity.DescribeCertificateRequest) (*entity.DescribeCertificateResponse, error) {
	cert, found, err := s.certs.find(ctx, req.CertificateID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apierror.NotFound(apierror.ErrCertificateNotFound, "certificate", req.CertificateID)
	}
	return &entity.DescribeCertificateResponse{Certificate: cert}, nil
}

// RenameCertificate 修改证书名称并持久化整个集合
// 名称去除空白后为空时不做任何修改，返回 Updated=false
func (s *CertificateService) RenameCertificate(ctx context.Context, req *entity.RenameCertificateRequest) (*entity.RenameCertificateResponse, error) {
	logger := zerolog.Ctx(ctx)
	name := strings.TrimSpace(req.Name)

	cert, found, changed, err := s.certs.update(ctx, req.CertificateID, func(c *entity.Certificate) bool {
		if name == "" {
			return false
		}
		c.Name = name
		return true
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apierror.NotFound(apierror.ErrCertificateNotFound, "certificate", req.CertificateID)
	}

	if changed {
		logger.Info().Str("certificate_id", cert.ID).Str("name", cert.Name).Msg("Certificate renamed")
	} else {
		logger.Debug().Str("certificate_id", cert.ID).Msg("Empty certificate name ignored")
	}
	return &entity.RenameCertificateResponse{Certificate: &cert, Updated: changed}, nil
}

// ListCertificates 返回完整集合的拷贝
func (s *CertificateService) ListCertificates(ctx context.Context) ([]entity.Certificate, error) {
	return s.certs.clone(ctx)
}

// LoadState 加载状态
func (s *CertificateService) LoadState() entity.LoadState {
	return s.certs.state()
}

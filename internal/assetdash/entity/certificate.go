// Package entity 定义业务实体
package entity

import (
	"strings"
	"time"

	"github.com/jimyag/assetdash/pkg/apierror"
	"github.com/jimyag/assetdash/pkg/listview"
)

// 证书生命周期状态（仅用于展示，不会根据过期时间重新计算）
const (
	CertificateStatusActive   = "active"
	CertificateStatusExpiring = "expiring"
	CertificateStatusExpired  = "expired"
)

// CertificateStatuses 所有合法的证书状态
var CertificateStatuses = []string{
	CertificateStatusActive,
	CertificateStatusExpiring,
	CertificateStatusExpired,
}

// Certificate TLS 证书
type Certificate struct {
	ID           string    `json:"id"           yaml:"id"`
	Name         string    `json:"name"         yaml:"name"`
	Domain       string    `json:"domain"       yaml:"domain"`
	Issuer       string    `json:"issuer"       yaml:"issuer"`
	Status       string    `json:"status"       yaml:"status"` // active, expiring, expired
	ExpiryDate   time.Time `json:"expiryDate"   yaml:"expiryDate"`
	CreatedAt    time.Time `json:"createdAt"    yaml:"createdAt"`
	Algorithm    string    `json:"algorithm"    yaml:"algorithm"`
	SerialNumber string    `json:"serialNumber" yaml:"serialNumber"`
}

// MaxPageSize 单页最多返回的记录数
const MaxPageSize = 100

// DescribeCertificatesRequest 查询证书列表请求
type DescribeCertificatesRequest struct {
	Search    string `json:"search,omitempty"    form:"search"`
	Status    string `json:"status,omitempty"    form:"status"`    // active, expiring, expired, all
	SortOrder string `json:"sortOrder,omitempty" form:"sortOrder"` // 按过期时间排序：asc（默认）, desc
	Page      int    `json:"page,omitempty"      form:"page"`      // 从 1 开始
	PageSize  int    `json:"pageSize,omitempty"  form:"pageSize"`
}

// IsValid 校验请求参数
func (r *DescribeCertificatesRequest) IsValid() error {
	if err := validateChoice("status", r.Status, CertificateStatuses); err != nil {
		return err
	}
	if _, err := listview.ParseSortOrder(r.SortOrder, listview.SortAsc); err != nil {
		return apierror.InvalidParameter("%v", err)
	}
	if r.Page < 0 {
		return apierror.InvalidParameter("page must not be negative")
	}
	if r.PageSize < 0 || r.PageSize > MaxPageSize {
		return apierror.InvalidParameter("pageSize must be between 1 and %d", MaxPageSize)
	}
	return nil
}

// DescribeCertificatesResponse 查询证书列表响应
type DescribeCertificatesResponse struct {
	Certificates []Certificate `json:"certificates"`
	Page         int           `json:"page"`
	PageSize     int           `json:"pageSize"`
	TotalPages   int           `json:"totalPages"`
	TotalCount   int           `json:"totalCount"`
}

// DescribeCertificateRequest 查询单个证书请求
type DescribeCertificateRequest struct {
	CertificateID string `json:"certificateID" form:"certificateID" binding:"required"`
}

// DescribeCertificateResponse 查询单个证书响应
type DescribeCertificateResponse struct {
	Certificate *Certificate `json:"certificate"`
}

// RenameCertificateRequest 修改证书名称请求
type RenameCertificateRequest struct {
	CertificateID string `json:"certificateID" binding:"required"`
	Name          string `json:"name"`
}

// RenameCertificateResponse 修改证书名称响应
// 名称去除空白后为空时不做修改，Updated 为 false
type RenameCertificateResponse struct {
	Certificate *Certificate `json:"certificate"`
	Updated     bool         `json:"updated"`
}

// validateChoice 校验分类过滤值，空字符串和 "all" 总是合法
func validateChoice(field, value string, choices []string) error {
	if value == "" || value == listview.FilterAll {
		return nil
	}
	for _, c := range choices {
		if value == c {
			return nil
		}
	}
	return apierror.InvalidParameter("invalid %s %q, supported: %s, %s", field, value, strings.Join(choices, ", "), listview.FilterAll)
}

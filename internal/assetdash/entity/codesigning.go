package entity

import (
	"time"

	"github.com/jimyag/assetdash/pkg/apierror"
	"github.com/jimyag/assetdash/pkg/listview"
)

// 代码签名密钥保护级别
const (
	ProtectionLevelHSM      = "hsm"
	ProtectionLevelSoftware = "software"
)

// ProtectionLevels 所有合法的保护级别
var ProtectionLevels = []string{ProtectionLevelHSM, ProtectionLevelSoftware}

// ViewMode 代码签名页面的展示方式
type ViewMode string

const (
	ViewModeTable ViewMode = "table"
	ViewModeGrid  ViewMode = "grid"
)

// Valid 判断展示方式是否合法
func (m ViewMode) Valid() bool {
	return m == ViewModeTable || m == ViewModeGrid
}

// Toggle 在 table 和 grid 之间切换
func (m ViewMode) Toggle() ViewMode {
	if m == ViewModeGrid {
		return ViewModeTable
	}
	return ViewModeGrid
}

// CodeSigningKey 代码签名密钥
type CodeSigningKey struct {
	ID              string    `json:"id"              yaml:"id"`
	Alias           string    `json:"alias"           yaml:"alias"`
	Algorithm       string    `json:"algorithm"       yaml:"algorithm"`
	ProtectionLevel string    `json:"protectionLevel" yaml:"protectionLevel"` // hsm, software
	CreatedAt       time.Time `json:"createdAt"       yaml:"createdAt"`
	LastUsed        time.Time `json:"lastUsed"        yaml:"lastUsed"`
	UsageCount      int64     `json:"usageCount"      yaml:"usageCount"` // 单调递增
}

// DescribeCodeSigningKeysRequest 查询代码签名密钥列表请求
type DescribeCodeSigningKeysRequest struct {
	Search          string `json:"search,omitempty"          form:"search"`
	ProtectionLevel string `json:"protectionLevel,omitempty" form:"protectionLevel"` // hsm, software, all
	SortOrder       string `json:"sortOrder,omitempty"       form:"sortOrder"`       // 按最近使用时间排序：desc（默认）, asc
}

// IsValid 校验请求参数
func (r *DescribeCodeSigningKeysRequest) IsValid() error {
	if err := validateChoice("protectionLevel", r.ProtectionLevel, ProtectionLevels); err != nil {
		return err
	}
	if _, err := listview.ParseSortOrder(r.SortOrder, listview.SortDesc); err != nil {
		return apierror.InvalidParameter("%v", err)
	}
	return nil
}

// DescribeCodeSigningKeysResponse 查询代码签名密钥列表响应
type DescribeCodeSigningKeysResponse struct {
	CodeSigningKeys []CodeSigningKey `json:"codeSigningKeys"`
	TotalCount      int              `json:"totalCount"`
	ViewMode        ViewMode         `json:"viewMode"`
}

// DescribeCodeSigningKeyRequest 查询单个代码签名密钥请求
type DescribeCodeSigningKeyRequest struct {
	CodeSigningKeyID string `json:"codeSigningKeyID" form:"codeSigningKeyID" binding:"required"`
}

// DescribeCodeSigningKeyResponse 查询单个代码签名密钥响应
type DescribeCodeSigningKeyResponse struct {
	CodeSigningKey *CodeSigningKey `json:"codeSigningKey"`
}

// SetViewModeRequest 设置展示方式请求
type SetViewModeRequest struct {
	ViewMode ViewMode `json:"viewMode" binding:"required"`
}

// IsValid 校验请求参数
func (r *SetViewModeRequest) IsValid() error {
	if !r.ViewMode.Valid() {
		return apierror.InvalidParameter("invalid viewMode %q, supported: table, grid", r.ViewMode)
	}
	return nil
}

// ViewModeResponse 展示方式响应
type ViewModeResponse struct {
	ViewMode ViewMode `json:"viewMode"`
}

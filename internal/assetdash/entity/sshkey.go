package entity

import (
	"time"

	"github.com/jimyag/assetdash/pkg/apierror"
	"github.com/jimyag/assetdash/pkg/listview"
)

// SSH 密钥信任等级
const (
	TrustLevelHigh   = "high"
	TrustLevelMedium = "medium"
	TrustLevelLow    = "low"
)

// TrustLevels 所有合法的信任等级
var TrustLevels = []string{TrustLevelHigh, TrustLevelMedium, TrustLevelLow}

// TrustRank 信任等级的排序权重：high > medium > low，未知等级最低
func TrustRank(level string) int {
	switch level {
	case TrustLevelHigh:
		return 3
	case TrustLevelMedium:
		return 2
	case TrustLevelLow:
		return 1
	}
	return 0
}

// SSHKey SSH 密钥
type SSHKey struct {
	ID          string    `json:"id"                  yaml:"id"`
	Owner       string    `json:"owner"               yaml:"owner"`
	Fingerprint string    `json:"fingerprint"         yaml:"fingerprint"` // SHA256 指纹
	PublicKey   string    `json:"publicKey,omitempty" yaml:"publicKey"`   // authorized_keys 格式
	KeyType     string    `json:"keyType"             yaml:"keyType"`
	TrustLevel  string    `json:"trustLevel"          yaml:"trustLevel"` // high, medium, low
	LastUsed    time.Time `json:"lastUsed"            yaml:"lastUsed"`
	Servers     []string  `json:"servers"             yaml:"servers"` // 仅用于展示的服务器名称
}

// DescribeSSHKeysRequest 查询 SSH 密钥列表请求
type DescribeSSHKeysRequest struct {
	Search     string `json:"search,omitempty"     form:"search"`
	TrustLevel string `json:"trustLevel,omitempty" form:"trustLevel"` // high, medium, low, all
	SortOrder  string `json:"sortOrder,omitempty"  form:"sortOrder"`  // 按信任等级排序：desc（默认）, asc
}

// IsValid 校验请求参数
func (r *DescribeSSHKeysRequest) IsValid() error {
	if err := validateChoice("trustLevel", r.TrustLevel, TrustLevels); err != nil {
		return err
	}
	if _, err := listview.ParseSortOrder(r.SortOrder, listview.SortDesc); err != nil {
		return apierror.InvalidParameter("%v", err)
	}
	return nil
}

// DescribeSSHKeysResponse 查询 SSH 密钥列表响应
type DescribeSSHKeysResponse struct {
	SSHKeys    []SSHKey `json:"sshKeys"`
	TotalCount int      `json:"totalCount"`
}

// DescribeSSHKeyRequest 查询单个 SSH 密钥请求
type DescribeSSHKeyRequest struct {
	SSHKeyID string `json:"sshKeyID" form:"sshKeyID" binding:"required"`
}

// DescribeSSHKeyResponse 查询单个 SSH 密钥响应
type DescribeSSHKeyResponse struct {
	SSHKey *SSHKey `json:"sshKey"`
}

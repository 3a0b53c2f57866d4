package service

import (
	"cmp"
	"time"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/pkg/listview"
)

// 各记录类型的默认排序方向
const (
	CertificateDefaultOrder    = listview.SortAsc
	SSHKeyDefaultOrder         = listview.SortDesc
	CodeSigningKeyDefaultOrder = listview.SortDesc
	AuditLogDefaultOrder       = listview.SortDesc
)

// CertificatePipeline 按名称、域名、签发者搜索，按过期时间排序
func CertificatePipeline() listview.Pipeline[entity.Certificate] {
	return listview.Pipeline[entity.Certificate]{
		SearchFields: func(c entity.Certificate) []string {
			return []string{c.Name, c.Domain, c.Issuer}
		},
		Compare: func(a, b entity.Certificate) int {
			return a.ExpiryDate.Compare(b.ExpiryDate)
		},
	}
}

// CertificateStatusFilter 按状态精确匹配
func CertificateStatusFilter(status string) listview.Predicate[entity.Certificate] {
	return listview.Equals(func(c entity.Certificate) string { return c.Status }, status)
}

// SSHKeyPipeline 按所有者、指纹搜索，按信任等级排序
func SSHKeyPipeline() listview.Pipeline[entity.SSHKey] {
	return listview.Pipeline[entity.SSHKey]{
		SearchFields: func(k entity.SSHKey) []string {
			return []string{k.Owner, k.Fingerprint}
		},
		Compare: func(a, b entity.SSHKey) int {
			return cmp.Compare(entity.TrustRank(a.TrustLevel), entity.TrustRank(b.TrustLevel))
		},
	}
}

// SSHKeyTrustFilter 按信任等级精确匹配
func SSHKeyTrustFilter(level string) listview.Predicate[entity.SSHKey] {
	return listview.Equals(func(k entity.SSHKey) string { return k.TrustLevel }, level)
}

// CodeSigningKeyPipeline 按别名、算法搜索，按最近使用时间排序
func CodeSigningKeyPipeline() listview.Pipeline[entity.CodeSigningKey] {
	return listview.Pipeline[entity.CodeSigningKey]{
		SearchFields: func(k entity.CodeSigningKey) []string {
			return []string{k.Alias, k.Algorithm}
		},
		Compare: func(a, b entity.CodeSigningKey) int {
			return a.LastUsed.Compare(b.LastUsed)
		},
	}
}

// CodeSigningKeyProtectionFilter 按保护级别精确匹配
func CodeSigningKeyProtectionFilter(level string) listview.Predicate[entity.CodeSigningKey] {
	return listview.Equals(func(k entity.CodeSigningKey) string { return k.ProtectionLevel }, level)
}

// AuditLogPipeline 按操作者、操作类型、目标资源搜索，按时间排序
func AuditLogPipeline() listview.Pipeline[entity.AuditLog] {
	return listview.Pipeline[entity.AuditLog]{
		SearchFields: func(l entity.AuditLog) []string {
			return []string{l.Actor, l.ActionType, l.TargetResource}
		},
		Compare: func(a, b entity.AuditLog) int {
			return a.Timestamp.Compare(b.Timestamp)
		},
	}
}

// AuditLogActionFilter 按操作类型精确匹配
func AuditLogActionFilter(actionType string) listview.Predicate[entity.AuditLog] {
	return listview.Equals(func(l entity.AuditLog) string { return l.ActionType }, actionType)
}

// AuditLogDateFilter 时间闭区间过滤，零值表示不限
func AuditLogDateFilter(from, to time.Time) listview.Predicate[entity.AuditLog] {
	return listview.Between(func(l entity.AuditLog) time.Time { return l.Timestamp }, from, to)
}

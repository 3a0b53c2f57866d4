package entity

// 记录类型，同时作为快照存储的槽位名称
const (
	KindCertificates    = "certificates"
	KindSSHKeys         = "ssh_keys"
	KindCodeSigningKeys = "code_signing_keys"
	KindAuditLogs       = "audit_logs"
)

// LoadState 某种记录的加载状态
type LoadState struct {
	Kind  string `json:"kind"`
	State string `json:"state"` // idle, loading, ready, error
	Error string `json:"error,omitempty"`
}

// DescribeLoadStatesResponse 所有记录类型的加载状态
type DescribeLoadStatesResponse struct {
	States []LoadState `json:"states"`
}

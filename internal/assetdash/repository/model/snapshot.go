package model

import "time"

// Snapshot 快照表，每个槽位保存一份完整的序列化数据
type Snapshot struct {
	Name      string    `gorm:"primaryKey;type:text;column:name" json:"name"`     // certificates, ssh_keys, ...
	Payload   []byte    `gorm:"type:blob;not null;column:payload" json:"payload"` // JSON 编码的完整集合
	UpdatedAt time.Time `gorm:"type:datetime;not null;column:updated_at" json:"updated_at"`
}

// TableName 指定表名
func (Snapshot) TableName() string {
	return "snapshots"
}

package repository

import (
	"context"
	"time"

	"github.com/jimyag/assetdash/internal/assetdash/repository/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRepository 快照仓库接口
type SnapshotRepository interface {
	Get(ctx context.Context, name string) (*model.Snapshot, error)
	Put(ctx context.Context, name string, payload []byte) error
	Keys(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}

type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository 创建快照仓库
func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Get 根据槽位名称获取快照，不存在时返回 gorm.ErrRecordNotFound
func (r *snapshotRepository) Get(ctx context.Context, name string) (*model.Snapshot, error) {
	var snapshot model.Snapshot
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&snapshot).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Put 写入快照，已存在时整体覆盖
func (r *snapshotRepository) Put(ctx context.Context, name string, payload []byte) error {
	snapshot := &model.Snapshot{
		Name:      name,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(snapshot).Error
}

// Keys 列出所有快照的槽位名称
func (r *snapshotRepository) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := r.db.WithContext(ctx).Model(&model.Snapshot{}).Order("name").Pluck("name", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// Delete 删除快照
func (r *snapshotRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Delete(&model.Snapshot{}, "name = ?", name).Error
}

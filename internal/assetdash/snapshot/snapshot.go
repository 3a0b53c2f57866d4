// Package snapshot 在快照仓库之上提供带类型的槽位，负责序列化和损坏检测
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jimyag/assetdash/internal/assetdash/repository"
	"gorm.io/gorm"
)

var (
	// ErrNotFound 槽位中还没有快照
	ErrNotFound = errors.New("snapshot not found")
	// ErrCorrupt 槽位中的快照无法解析
	ErrCorrupt = errors.New("snapshot corrupt")
)

// Store 快照存储
type Store struct {
	repo repository.SnapshotRepository
}

// NewStore 创建快照存储
func NewStore(repo repository.SnapshotRepository) *Store {
	return &Store{repo: repo}
}

// read 读取原始数据，不存在时返回 ErrNotFound
func (s *Store) read(ctx context.Context, name string) ([]byte, error) {
	snap, err := s.repo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("read snapshot %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("read snapshot %s: %w", name, err)
	}
	return snap.Payload, nil
}

func (s *Store) write(ctx context.Context, name string, payload []byte) error {
	if err := s.repo.Put(ctx, name, payload); err != nil {
		return fmt.Errorf("write snapshot %s: %w", name, err)
	}
	return nil
}

// Slot 一个命名的、带类型的快照槽位
type Slot[T any] struct {
	name  string
	store *Store
}

// NewSlot 创建槽位
func NewSlot[T any](store *Store, name string) Slot[T] {
	return Slot[T]{name: name, store: store}
}

// Name 槽位名称
func (s Slot[T]) Name() string { return s.name }

// Load 读取并解码快照
// 槽位为空时返回 ErrNotFound，内容无法解码时返回 ErrCorrupt
func (s Slot[T]) Load(ctx context.Context) (T, error) {
	var value T
	payload, err := s.store.read(ctx, s.name)
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(payload, &value); err != nil {
		var zero T
		return zero, fmt.Errorf("decode snapshot %s: %w: %v", s.name, ErrCorrupt, err)
	}
	return value, nil
}

// Save 编码并写入快照，覆盖已有内容
func (s Slot[T]) Save(ctx context.Context, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", s.name, err)
	}
	return s.store.write(ctx, s.name, payload)
}

// Package loader 实现带缓存的数据加载：优先使用已持久化的快照，
// 没有快照时使用内置的默认数据集并写回快照
package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jimyag/assetdash/internal/assetdash/snapshot"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog"
)

// State 加载状态
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// DefaultsFunc 返回内置的默认数据集
type DefaultsFunc[T any] func() ([]T, error)

// Loader 某一种记录的加载器
type Loader[T any] struct {
	kind     string
	slot     snapshot.Slot[[]T]
	defaults DefaultsFunc[T]
	latency  time.Duration

	mu    sync.RWMutex
	state State
	err   error
}

// New 创建加载器，kind 同时作为快照槽位名称
func New[T any](store *snapshot.Store, kind string, defaults DefaultsFunc[T], latency time.Duration) *Loader[T] {
	return &Loader[T]{
		kind:     kind,
		slot:     snapshot.NewSlot[[]T](store, kind),
		defaults: defaults,
		latency:  latency,
	}
}

// Kind 记录类型
func (l *Loader[T]) Kind() string { return l.kind }

// State 返回当前状态以及最近一次失败的原因
func (l *Loader[T]) State() (State, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state, l.err
}

// Load 加载完整集合
// 每次调用都会先等待固定的延迟；快照存在但无法解析时返回错误，不会回退到默认数据集。
// ctx 取消时放弃本次加载，状态回到 idle
func (l *Loader[T]) Load(ctx context.Context) ([]T, error) {
	logger := zerolog.Ctx(ctx).With().Str("kind", l.kind).Logger()
	l.setState(StateLoading, nil)

	items, err := l.load(ctx)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			l.setState(StateIdle, nil)
			logger.Debug().Err(err).Msg("Load canceled")
			return nil, err
		}
		l.setState(StateError, err)
		logger.Error().Err(err).Msg("Failed to load collection")
		return nil, err
	}

	l.setState(StateReady, nil)
	logger.Debug().Int("count", len(items)).Msg("Collection loaded")
	return items, nil
}

func (l *Loader[T]) load(ctx context.Context) ([]T, error) {
	if err := sleep(ctx, l.latency); err != nil {
		return nil, err
	}

	items, err := l.slot.Load(ctx)
	switch {
	case err == nil:
		return items, nil
	case errors.Is(err, snapshot.ErrNotFound):
	default:
		return nil, fmt.Errorf("load %s: %w", l.kind, err)
	}

	defaults, err := l.defaults()
	if err != nil {
		return nil, fmt.Errorf("load %s defaults: %w", l.kind, err)
	}
	items, err = Clone(defaults)
	if err != nil {
		return nil, fmt.Errorf("load %s defaults: %w", l.kind, err)
	}
	if err := l.slot.Save(ctx, items); err != nil {
		return nil, fmt.Errorf("persist %s: %w", l.kind, err)
	}
	return items, nil
}

// Persist 用完整集合覆盖快照
func (l *Loader[T]) Persist(ctx context.Context, items []T) error {
	if err := l.slot.Save(ctx, items); err != nil {
		return fmt.Errorf("persist %s: %w", l.kind, err)
	}
	return nil
}

func (l *Loader[T]) setState(state State, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = state
	l.err = err
}

// Clone 深拷贝集合，调用方可以随意修改返回值
func Clone[T any](items []T) ([]T, error) {
	out := make([]T, 0, len(items))
	if len(items) == 0 {
		return out, nil
	}
	if err := copier.CopyWithOption(&out, items, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone collection: %w", err)
	}
	return out, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

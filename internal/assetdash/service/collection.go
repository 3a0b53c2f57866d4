package service

import (
	"context"
	"sync"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/internal/assetdash/loader"
	"github.com/jimyag/assetdash/pkg/apierror"
)

// collection 某一种记录在内存中的完整集合，首次访问时通过 loader 加载
// 加载失败不会被缓存，下一次访问会重新加载
type collection[T any] struct {
	loader *loader.Loader[T]
	idOf   func(T) string

	loadMu sync.Mutex // 串行化加载
	mu     sync.RWMutex
	items  []T
	loaded bool
}

func newCollection[T any](l *loader.Loader[T], idOf func(T) string) *collection[T] {
	return &collection[T]{loader: l, idOf: idOf}
}

// get 返回完整集合，返回的切片只读
func (c *collection[T]) get(ctx context.Context) ([]T, error) {
	if items, ok := c.cached(); ok {
		return items, nil
	}

	c.loadMu.Lock()
	defer c.loadMu.Unlock()
	if items, ok := c.cached(); ok {
		return items, nil
	}

	items, err := c.loader.Load(ctx)
	if err != nil {
		return nil, apierror.LoadFailure(c.loader.Kind(), err)
	}

	c.mu.Lock()
	c.items = items
	c.loaded = true
	c.mu.Unlock()
	return items, nil
}

func (c *collection[T]) cached() ([]T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items, c.loaded
}

// clone 返回完整集合的深拷贝，调用方可以修改
func (c *collection[T]) clone(ctx context.Context) ([]T, error) {
	items, err := c.get(ctx)
	if err != nil {
		return nil, err
	}
	out, err := loader.Clone(items)
	if err != nil {
		return nil, apierror.Internal("Failed to copy records", err)
	}
	return out, nil
}

// find 按 ID 查找记录并返回深拷贝
func (c *collection[T]) find(ctx context.Context, id string) (*T, bool, error) {
	items, err := c.get(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, item := range items {
		if c.idOf(item) != id {
			continue
		}
		out, err := loader.Clone([]T{item})
		if err != nil {
			return nil, false, apierror.Internal("Failed to copy record", err)
		}
		return &out[0], true, nil
	}
	return nil, false, nil
}

// update 在完整集合中修改 ID 匹配的记录并持久化整个集合
// fn 返回 false 表示不需要修改；持久化失败时内存中的修改会被回滚
func (c *collection[T]) update(ctx context.Context, id string, fn func(*T) bool) (item T, found, changed bool, err error) {
	if _, err := c.get(ctx); err != nil {
		return item, false, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return item, false, false, nil
	}

	next := make([]T, len(c.items))
	copy(next, c.items)
	if !fn(&next[idx]) {
		return c.items[idx], true, false, nil
	}
	if err := c.loader.Persist(ctx, next); err != nil {
		return item, true, false, apierror.Internal("Failed to persist "+c.loader.Kind(), err)
	}
	c.items = next
	return next[idx], true, true, nil
}

// state 当前加载状态
func (c *collection[T]) state() entity.LoadState {
	st, err := c.loader.State()
	ls := entity.LoadState{Kind: c.loader.Kind(), State: st.String()}
	if err != nil {
		ls.Error = err.Error()
	}
	return ls
}

package listview

import (
	"slices"
)

// Controller 持有一个列表页面的全部状态：完整集合、查询条件、分页策略和展开状态
//
// Controller 不是并发安全的，由单个页面实例独占使用
type Controller[T any] struct {
	pipeline Pipeline[T]
	idOf     func(T) string
	policy   Policy

	items   []T
	search  string
	filters map[string]Predicate[T]
	order   SortOrder

	expanded *ExpansionSet
	filtered []T
}

// NewController 创建控制器，policy 为 nil 时所有记录都可见
func NewController[T any](pipeline Pipeline[T], idOf func(T) string, policy Policy, order SortOrder) *Controller[T] {
	if order == "" {
		order = SortAsc
	}
	return &Controller[T]{
		pipeline: pipeline,
		idOf:     idOf,
		policy:   policy,
		filters:  make(map[string]Predicate[T]),
		order:    order,
		expanded: NewExpansionSet(),
	}
}

// SetItems 替换完整集合并回到第一页，展开状态保留
func (c *Controller[T]) SetItems(items []T) {
	c.items = slices.Clone(items)
	c.resetPolicy()
	c.recompute()
}

// Items 完整集合
func (c *Controller[T]) Items() []T { return c.items }

// Replace 按 ID 在完整集合中原地修改一条记录，不会回到第一页
func (c *Controller[T]) Replace(id string, fn func(*T)) bool {
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			fn(&c.items[i])
			c.recompute()
			return true
		}
	}
	return false
}

// Find 按 ID 查找记录
func (c *Controller[T]) Find(id string) (T, bool) {
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Search 当前搜索文本
func (c *Controller[T]) Search() string { return c.search }

// SetSearch 修改搜索文本，文本变化时回到初始位置
func (c *Controller[T]) SetSearch(search string) {
	if search == c.search {
		return
	}
	c.search = search
	c.resetPolicy()
	c.recompute()
}

// SetFilter 设置（或替换）一个命名的过滤条件，并回到初始位置
func (c *Controller[T]) SetFilter(name string, pred Predicate[T]) {
	c.filters[name] = pred
	c.resetPolicy()
	c.recompute()
}

// ClearFilter 删除命名的过滤条件
func (c *Controller[T]) ClearFilter(name string) {
	if _, ok := c.filters[name]; !ok {
		return
	}
	delete(c.filters, name)
	c.resetPolicy()
	c.recompute()
}

// Order 当前排序方向
func (c *Controller[T]) Order() SortOrder { return c.order }

// SetOrder 修改排序方向，不影响当前页码
func (c *Controller[T]) SetOrder(order SortOrder) {
	if order == c.order {
		return
	}
	c.order = order
	c.recompute()
}

// ToggleOrder 切换排序方向
func (c *Controller[T]) ToggleOrder() SortOrder {
	c.SetOrder(c.order.Toggle())
	return c.order
}

// Policy 当前分页策略
func (c *Controller[T]) Policy() Policy { return c.policy }

// SetPageSize 修改每页条数，仅对 Pages 策略生效
func (c *Controller[T]) SetPageSize(size int) {
	if p, ok := c.policy.(*Pages); ok {
		p.SetSize(size)
	}
}

// NextPage 翻到下一页
func (c *Controller[T]) NextPage() bool {
	if p, ok := c.policy.(*Pages); ok {
		return p.Next(len(c.filtered))
	}
	return false
}

// PrevPage 翻到上一页
func (c *Controller[T]) PrevPage() bool {
	if p, ok := c.policy.(*Pages); ok {
		return p.Prev()
	}
	return false
}

// More 拉取更多记录（增量展示），策略不是 Reveal 或已全部展示时返回 false
func (c *Controller[T]) More() bool {
	if r, ok := c.policy.(*Reveal); ok {
		return r.More(len(c.filtered))
	}
	return false
}

// Filtered 过滤排序后的完整结果
func (c *Controller[T]) Filtered() []T { return c.filtered }

// Visible 当前可见的切片
func (c *Controller[T]) Visible() []T {
	if c.policy == nil {
		return c.filtered
	}
	start, end := c.policy.Window(len(c.filtered))
	return c.filtered[start:end]
}

// Expansion 展开状态集合
func (c *Controller[T]) Expansion() *ExpansionSet { return c.expanded }

// Toggle 翻转记录的展开状态
func (c *Controller[T]) Toggle(id string) bool { return c.expanded.Toggle(id) }

// IsExpanded 判断记录是否展开
func (c *Controller[T]) IsExpanded(id string) bool { return c.expanded.IsExpanded(id) }

// ID 返回记录的 ID
func (c *Controller[T]) ID(item T) string { return c.idOf(item) }

func (c *Controller[T]) resetPolicy() {
	if c.policy != nil {
		c.policy.Reset()
	}
}

func (c *Controller[T]) recompute() {
	names := make([]string, 0, len(c.filters))
	for name := range c.filters {
		names = append(names, name)
	}
	slices.Sort(names)

	preds := make([]Predicate[T], 0, len(names))
	for _, name := range names {
		preds = append(preds, c.filters[name])
	}

	c.filtered = c.pipeline.Apply(c.items, Query[T]{
		Search:  c.search,
		Filters: preds,
		Order:   c.order,
	})
	// 过滤结果变少时页码要落回有效范围
	if p, ok := c.policy.(*Pages); ok {
		p.SetPage(p.Page(), len(c.filtered))
	}
}

package listview

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// SortOrder 排序方向
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder 解析排序方向，空字符串返回 def
func ParseSortOrder(s string, def SortOrder) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return def, nil
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	}
	return "", fmt.Errorf("invalid sort order %q, supported: asc, desc", s)
}

// Toggle 返回相反的排序方向
func (o SortOrder) Toggle() SortOrder {
	if o == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// Predicate 过滤条件
type Predicate[T any] func(T) bool

// All 不做任何限制的过滤条件
func All[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// Equals 精确匹配某个字段；value 为空或 "all" 时不做限制
func Equals[T any](field func(T) string, value string) Predicate[T] {
	if value == "" || value == FilterAll {
		return All[T]()
	}
	return func(item T) bool {
		return field(item) == value
	}
}

// Between 时间字段落在 [from, to] 闭区间内；零值表示该侧不设限
func Between[T any](field func(T) time.Time, from, to time.Time) Predicate[T] {
	if from.IsZero() && to.IsZero() {
		return All[T]()
	}
	return func(item T) bool {
		ts := field(item)
		if !from.IsZero() && ts.Before(from) {
			return false
		}
		if !to.IsZero() && ts.After(to) {
			return false
		}
		return true
	}
}

// FilterAll 表示分类过滤器的“全部”选项
const FilterAll = "all"

// Pipeline 描述一种记录类型的查询方式
type Pipeline[T any] struct {
	// SearchFields 返回参与文本搜索的字段
	SearchFields func(T) []string
	// Compare 按排序键升序比较两个记录
	Compare func(a, b T) int
}

// Query 一次查询的全部输入
type Query[T any] struct {
	Search  string
	Filters []Predicate[T]
	Order   SortOrder
}

// Apply 对完整集合执行搜索、过滤和稳定排序，返回新的切片，不修改 items
func (p Pipeline[T]) Apply(items []T, q Query[T]) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && !p.matches(item, needle) {
			continue
		}
		if !matchAll(item, q.Filters) {
			continue
		}
		out = append(out, item)
	}

	if p.Compare != nil {
		cmp := p.Compare
		if q.Order == SortDesc {
			cmp = func(a, b T) int { return p.Compare(b, a) }
		}
		slices.SortStableFunc(out, cmp)
	}
	return out
}

func (p Pipeline[T]) matches(item T, needle string) bool {
	if p.SearchFields == nil {
		return true
	}
	return MatchesSearch(p.SearchFields(item), needle)
}

// MatchesSearch 判断任意字段是否包含 search（大小写不敏感）
func MatchesSearch(fields []string, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func matchAll[T any](item T, preds []Predicate[T]) bool {
	for _, pred := range preds {
		if pred != nil && !pred(item) {
			return false
		}
	}
	return true
}

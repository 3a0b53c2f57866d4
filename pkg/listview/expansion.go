package listview

import "slices"

// ExpansionSet 记录哪些行处于展开状态，按记录 ID 而不是位置索引
type ExpansionSet struct {
	ids map[string]struct{}
}

// NewExpansionSet 创建空的展开集合
func NewExpansionSet() *ExpansionSet {
	return &ExpansionSet{ids: make(map[string]struct{})}
}

// Toggle 翻转 id 的展开状态，返回翻转后的状态
func (s *ExpansionSet) Toggle(id string) bool {
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// IsExpanded 判断 id 是否展开
func (s *ExpansionSet) IsExpanded(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len 展开的行数
func (s *ExpansionSet) Len() int { return len(s.ids) }

// IDs 返回排好序的展开 ID
func (s *ExpansionSet) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

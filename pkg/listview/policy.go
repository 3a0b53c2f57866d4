package listview

// Policy 决定过滤排序后的集合中哪一段可见
type Policy interface {
	// Window 返回 [start, end) 可见区间，total 为当前过滤后集合的大小
	Window(total int) (start, end int)
	// Reset 在搜索或过滤条件变化时回到初始位置
	Reset()
}

// DefaultPageSize 默认每页条数
const DefaultPageSize = 10

// TotalPages 计算总页数 ceil(total/size)，空集合为 0 页
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// PageWindow 计算第 page 页（从 1 开始）的区间，page 越界时夹到合法范围
// 返回实际使用的页码
func PageWindow(total, page, size int) (start, end, current int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := TotalPages(total, size)
	current = page
	if current > pages {
		current = pages
	}
	if current < 1 {
		current = 1
	}
	start = (current - 1) * size
	if start > total {
		start = total
	}
	end = min(start+size, total)
	return start, end, current
}

// Pages 基于页码的分页策略
type Pages struct {
	page int
	size int
}

var _ Policy = (*Pages)(nil)

// NewPages 创建分页策略，size 非法时使用 DefaultPageSize
func NewPages(size int) *Pages {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pages{page: 1, size: size}
}

// Page 当前页码（从 1 开始）
func (p *Pages) Page() int { return p.page }

// Size 每页条数
func (p *Pages) Size() int { return p.size }

// TotalPages 当前集合的总页数
func (p *Pages) TotalPages(total int) int { return TotalPages(total, p.size) }

// SetPage 跳转到指定页，越界时夹到 [1, 总页数]
func (p *Pages) SetPage(page, total int) {
	_, _, p.page = PageWindow(total, page, p.size)
}

// Next 翻到下一页，已经是最后一页时返回 false
func (p *Pages) Next(total int) bool {
	if p.page >= p.TotalPages(total) {
		return false
	}
	p.page++
	return true
}

// Prev 翻到上一页，已经是第一页时返回 false
func (p *Pages) Prev() bool {
	if p.page <= 1 {
		return false
	}
	p.page--
	return true
}

// SetSize 修改每页条数并回到第一页
func (p *Pages) SetSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	p.size = size
	p.page = 1
}

// Reset 回到第一页
func (p *Pages) Reset() { p.page = 1 }

// Window 实现 Policy
func (p *Pages) Window(total int) (int, int) {
	start, end, _ := PageWindow(total, p.page, p.size)
	return start, end
}

// Reveal 增量展示策略：初始展示 step 条，每次 More 再多展示 step 条
type Reveal struct {
	step int
	// visible 可能大于当前 total（结果集不足一批时），由 Visible 在读取时截断
	visible int
}

var _ Policy = (*Reveal)(nil)

// NewReveal 创建增量展示策略
func NewReveal(step int) *Reveal {
	if step <= 0 {
		step = DefaultPageSize
	}
	return &Reveal{step: step, visible: step}
}

// Step 每次增加的条数
func (r *Reveal) Step() int { return r.step }

// Visible 当前可见条数，不会超过 total
func (r *Reveal) Visible(total int) int {
	return max(0, min(r.visible, total))
}

// HasMore 是否还有未展示的记录
func (r *Reveal) HasMore(total int) bool {
	return r.visible < total
}

// More 请求再展示一批，已经全部展示时返回 false
func (r *Reveal) More(total int) bool {
	if !r.HasMore(total) {
		return false
	}
	r.visible = min(r.visible+r.step, total)
	return true
}

// Reset 回到初始条数
func (r *Reveal) Reset() { r.visible = r.step }

// Window 实现 Policy
func (r *Reveal) Window(total int) (int, int) {
	return 0, r.Visible(total)
}

// RevealCount 无状态版本：根据客户端已展示的条数计算本次可见条数
// visible <= 0 视为初次加载
func RevealCount(total, visible, step int) int {
	if step <= 0 {
		step = DefaultPageSize
	}
	if visible <= 0 {
		visible = step
	}
	return max(0, min(visible, total))
}

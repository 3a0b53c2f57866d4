package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/pkg/listview"
)

// page 是根模型中的一个标签页
type page interface {
	title() string
	// init 首次激活时调用，返回加载命令
	init() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	view(width, height int) string
	// capturing 为 true 时按键全部交给页面（正在输入）
	capturing() bool
}

type loadPhase int

const (
	phaseIdle loadPhase = iota
	phaseLoading
	phaseReady
	phaseError
)

// 页面之间共享消息通道，消息都带 kind，页面只处理自己的
type (
	loadedMsg[T any] struct {
		kind  string
		items []T
		err   error
	}
	renamedMsg[T any] struct {
		kind    string
		id      string
		item    T
		updated bool
		err     error
	}
	debounceMsg struct {
		kind string
		seq  int
	}
	viewModeMsg struct {
		kind string
		mode entity.ViewMode
		err  error
	}
)

type column[T any] struct {
	title string
	width int
	value func(T) string
	// style 可选，按值着色
	style func(T) lipgloss.Style
}

// filter 可循环切换的分类过滤器
type filter[T any] struct {
	name string
	// options 根据完整集合给出可选值，不含 all
	options func(items []T) []string
	build   func(value string) listview.Predicate[T]
	current string
}

type viewModeHooks struct {
	load func(ctx context.Context) (entity.ViewMode, error)
	save func(ctx context.Context, mode entity.ViewMode) error
}

type pageConfig[T any] struct {
	kind     string
	title    string
	pipeline listview.Pipeline[T]
	idOf     func(T) string
	order    listview.SortOrder
	policy   listview.Policy
	columns  []column[T]
	detail   func(T) []string
	filter   *filter[T]
	fetch    func(ctx context.Context) ([]T, error)

	// 以下为可选能力
	nameOf    func(T) string
	rename    func(ctx context.Context, id, name string) (T, bool, error)
	card      func(T) string
	viewMode  *viewModeHooks
	dateField func(T) time.Time
	pageSizes []int
}

type prompt struct {
	label    string
	input    textinput.Model
	onSubmit func(value string) tea.Cmd
}

type listPage[T any] struct {
	cfg      pageConfig[T]
	ctx      context.Context
	debounce time.Duration

	ctrl    *listview.Controller[T]
	phase   loadPhase
	err     error
	spinner spinner.Model

	search    textinput.Model
	searching bool
	searchSeq int

	prompt   *prompt
	cursor   int
	offset   int
	mode     entity.ViewMode
	dateDesc string
	status   string
	statusOK bool
}

func newListPage[T any](ctx context.Context, cfg pageConfig[T], debounce time.Duration) *listPage[T] {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = specialStyle

	ti := textinput.New()
	ti.Placeholder = "search"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return &listPage[T]{
		cfg:      cfg,
		ctx:      ctx,
		debounce: debounce,
		ctrl:     listview.NewController(cfg.pipeline, cfg.idOf, cfg.policy, cfg.order),
		spinner:  sp,
		search:   ti,
		mode:     entity.ViewModeTable,
	}
}

func (p *listPage[T]) title() string { return p.cfg.title }

func (p *listPage[T]) capturing() bool { return p.searching || p.prompt != nil }

func (p *listPage[T]) init() tea.Cmd {
	cmds := []tea.Cmd{p.load()}
	if p.cfg.viewMode != nil {
		cmds = append(cmds, p.loadViewMode())
	}
	return tea.Batch(cmds...)
}

func (p *listPage[T]) load() tea.Cmd {
	p.phase = phaseLoading
	p.err = nil
	kind, fetch, ctx := p.cfg.kind, p.cfg.fetch, p.ctx
	return tea.Batch(p.spinner.Tick, func() tea.Msg {
		items, err := fetch(ctx)
		return loadedMsg[T]{kind: kind, items: items, err: err}
	})
}

func (p *listPage[T]) loadViewMode() tea.Cmd {
	kind, hooks, ctx := p.cfg.kind, p.cfg.viewMode, p.ctx
	return func() tea.Msg {
		mode, err := hooks.load(ctx)
		return viewModeMsg{kind: kind, mode: mode, err: err}
	}
}

func (p *listPage[T]) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loadedMsg[T]:
		if msg.kind != p.cfg.kind {
			return nil
		}
		if msg.err != nil {
			p.phase = phaseError
			p.err = msg.err
			zerolog.Ctx(p.ctx).Error().Err(msg.err).Str("kind", p.cfg.kind).Msg("load failed")
			return nil
		}
		p.phase = phaseReady
		p.ctrl.SetItems(msg.items)
		p.resetCursor()
		return nil

	case renamedMsg[T]:
		if msg.kind != p.cfg.kind {
			return nil
		}
		switch {
		case msg.err != nil:
			p.setStatus(fmt.Sprintf("rename failed: %v", msg.err), false)
		case !msg.updated:
			p.setStatus("name is empty, nothing changed", false)
		default:
			p.ctrl.Replace(msg.id, func(item *T) { *item = msg.item })
			p.clampCursor()
			p.setStatus("renamed", true)
		}
		return nil

	case viewModeMsg:
		if msg.kind != p.cfg.kind {
			return nil
		}
		if msg.err != nil {
			p.setStatus(fmt.Sprintf("view mode: %v", msg.err), false)
			return nil
		}
		if msg.mode.Valid() {
			p.mode = msg.mode
		}
		return nil

	case debounceMsg:
		if msg.kind == p.cfg.kind && msg.seq == p.searchSeq {
			p.applySearch()
		}
		return nil

	case spinner.TickMsg:
		if p.phase != phaseLoading {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil
}

func (p *listPage[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.prompt != nil {
		return p.handlePromptKey(msg)
	}
	if p.searching {
		return p.handleSearchKey(msg)
	}

	switch p.phase {
	case phaseError:
		if msg.String() == "r" {
			return p.load()
		}
		return nil
	case phaseReady:
	default:
		return nil
	}

	visible := p.ctrl.Visible()
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(visible)-1 {
			p.cursor++
		} else if p.ctrl.More() {
			// 滚动到底部时拉取下一批
			p.cursor++
		}
	case "m":
		p.ctrl.More()
	case "enter", " ":
		if item, ok := p.current(); ok {
			p.ctrl.Toggle(p.ctrl.ID(item))
		}
	case "/":
		p.searching = true
		return p.search.Focus()
	case "f":
		p.cycleFilter()
	case "s":
		p.ctrl.ToggleOrder()
		p.clampCursor()
	case "n", "right":
		if p.ctrl.NextPage() {
			p.resetCursor()
		}
	case "p", "left":
		if p.ctrl.PrevPage() {
			p.resetCursor()
		}
	case "+":
		p.cyclePageSize()
	case "e":
		return p.openRename()
	case "d":
		return p.openDateRange()
	case "v":
		return p.toggleViewMode()
	case "r":
		return p.load()
	}
	return nil
}

func (p *listPage[T]) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		p.searching = false
		p.search.Blur()
		p.search.SetValue("")
		p.searchSeq++
		p.applySearch()
		return nil
	case tea.KeyEnter:
		p.searching = false
		p.search.Blur()
		p.searchSeq++
		p.applySearch()
		return nil
	}

	before := p.search.Value()
	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	if p.search.Value() == before {
		return cmd
	}
	p.searchSeq++
	seq, kind := p.searchSeq, p.cfg.kind
	return tea.Batch(cmd, tea.Tick(p.debounce, func(time.Time) tea.Msg {
		return debounceMsg{kind: kind, seq: seq}
	}))
}

func (p *listPage[T]) applySearch() {
	value := strings.TrimSpace(p.search.Value())
	if value == p.ctrl.Search() {
		return
	}
	p.ctrl.SetSearch(value)
	p.resetCursor()
}

func (p *listPage[T]) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		p.prompt = nil
		return nil
	case tea.KeyEnter:
		submit, value := p.prompt.onSubmit, p.prompt.input.Value()
		p.prompt = nil
		return submit(value)
	}
	var cmd tea.Cmd
	p.prompt.input, cmd = p.prompt.input.Update(msg)
	return cmd
}

func (p *listPage[T]) openPrompt(label, value string, onSubmit func(string) tea.Cmd) tea.Cmd {
	ti := textinput.New()
	ti.Prompt = label + ": "
	ti.CharLimit = 128
	ti.SetValue(value)
	ti.CursorEnd()
	p.prompt = &prompt{label: label, input: ti, onSubmit: onSubmit}
	return tea.Batch(p.prompt.input.Focus(), textinput.Blink)
}

func (p *listPage[T]) openRename() tea.Cmd {
	if p.cfg.rename == nil {
		return nil
	}
	item, ok := p.current()
	if !ok {
		return nil
	}
	id := p.ctrl.ID(item)
	kind, rename, ctx := p.cfg.kind, p.cfg.rename, p.ctx
	return p.openPrompt("rename", p.cfg.nameOf(item), func(name string) tea.Cmd {
		return func() tea.Msg {
			updated, changed, err := rename(ctx, id, name)
			return renamedMsg[T]{kind: kind, id: id, item: updated, updated: changed, err: err}
		}
	})
}

// openDateRange 输入 "起始..结束"，任意一侧可以留空
func (p *listPage[T]) openDateRange() tea.Cmd {
	if p.cfg.dateField == nil {
		return nil
	}
	return p.openPrompt("dates (YYYY-MM-DD..YYYY-MM-DD)", p.dateDesc, func(value string) tea.Cmd {
		p.applyDateRange(value)
		return nil
	})
}

func (p *listPage[T]) applyDateRange(value string) {
	value = strings.TrimSpace(value)
	start, end, _ := strings.Cut(value, "..")
	req := entity.DescribeAuditLogsRequest{
		StartDate: strings.TrimSpace(start),
		EndDate:   strings.TrimSpace(end),
	}
	if err := req.IsValid(); err != nil {
		p.setStatus(err.Error(), false)
		return
	}
	from, to, _ := req.DateRange()
	if from.IsZero() && to.IsZero() {
		p.dateDesc = ""
		p.ctrl.ClearFilter("date")
	} else {
		p.dateDesc = value
		p.ctrl.SetFilter("date", listview.Between(p.cfg.dateField, from, to))
	}
	p.status = ""
	p.resetCursor()
}

func (p *listPage[T]) toggleViewMode() tea.Cmd {
	if p.cfg.viewMode == nil {
		return nil
	}
	p.mode = p.mode.Toggle()
	p.resetCursor()
	kind, mode, save, ctx := p.cfg.kind, p.mode, p.cfg.viewMode.save, p.ctx
	return func() tea.Msg {
		if err := save(ctx, mode); err != nil {
			return viewModeMsg{kind: kind, err: err}
		}
		return viewModeMsg{kind: kind, mode: mode}
	}
}

func (p *listPage[T]) cycleFilter() {
	f := p.cfg.filter
	if f == nil {
		return
	}
	options := append([]string{listview.FilterAll}, f.options(p.ctrl.Items())...)
	i := slices.Index(options, f.current)
	if f.current == "" {
		i = 0
	}
	f.current = options[(i+1)%len(options)]
	if f.current == listview.FilterAll {
		p.ctrl.ClearFilter(f.name)
	} else {
		p.ctrl.SetFilter(f.name, f.build(f.current))
	}
	p.resetCursor()
}

func (p *listPage[T]) cyclePageSize() {
	pages, ok := p.ctrl.Policy().(*listview.Pages)
	if !ok || len(p.cfg.pageSizes) == 0 {
		return
	}
	i := slices.Index(p.cfg.pageSizes, pages.Size())
	p.ctrl.SetPageSize(p.cfg.pageSizes[(i+1)%len(p.cfg.pageSizes)])
	p.resetCursor()
}

func (p *listPage[T]) current() (T, bool) {
	visible := p.ctrl.Visible()
	if p.cursor < 0 || p.cursor >= len(visible) {
		var zero T
		return zero, false
	}
	return visible[p.cursor], true
}

func (p *listPage[T]) resetCursor() {
	p.cursor = 0
	p.offset = 0
}

func (p *listPage[T]) clampCursor() {
	n := len(p.ctrl.Visible())
	if p.cursor >= n {
		p.cursor = max(0, n-1)
	}
}

func (p *listPage[T]) setStatus(s string, ok bool) {
	p.status = s
	p.statusOK = ok
}

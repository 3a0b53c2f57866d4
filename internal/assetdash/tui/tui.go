// Package tui 提供终端界面的资产仪表盘
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jimyag/assetdash/internal/assetdash/service"
)

// Options 终端界面参数
type Options struct {
	SearchDebounce time.Duration
	PageSize       int
	RevealStep     int
}

// Model 根模型，包含四个标签页
type Model struct {
	pages   []page
	started []bool
	active  int
	width   int
	height  int
}

var _ tea.Model = (*Model)(nil)

// New 创建根模型，ctx 中的 logger 会传递给服务调用
func New(ctx context.Context, services *service.Services, opts Options) *Model {
	if opts.SearchDebounce <= 0 {
		opts.SearchDebounce = 300 * time.Millisecond
	}
	pages := []page{
		newCertificatesPage(ctx, services.Certificate, opts),
		newSSHKeysPage(ctx, services.SSHKey, opts),
		newCodeSigningKeysPage(ctx, services.CodeSigningKey, opts),
		newAuditLogsPage(ctx, services.AuditLog, opts),
	}
	return &Model{
		pages:   pages,
		started: make([]bool, len(pages)),
		width:   100,
		height:  30,
	}
}

// Run 启动终端界面，直到用户退出或 ctx 取消
func Run(ctx context.Context, services *service.Services, opts Options) error {
	_, err := tea.NewProgram(New(ctx, services, opts), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m *Model) Init() tea.Cmd {
	return m.activate(0)
}

// activate 切换标签页，首次激活时开始加载
func (m *Model) activate(i int) tea.Cmd {
	m.active = i
	if m.started[i] {
		return nil
	}
	m.started[i] = true
	return m.pages[i].init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		current := m.pages[m.active]
		if current.capturing() {
			return m, current.update(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			return m, m.activate((m.active + 1) % len(m.pages))
		case "shift+tab":
			return m, m.activate((m.active + len(m.pages) - 1) % len(m.pages))
		case "1", "2", "3", "4":
			i := int(msg.Runes[0] - '1')
			if i < len(m.pages) {
				return m, m.activate(i)
			}
			return m, nil
		}
		return m, current.update(msg)
	}

	// 其余消息广播给所有页面，页面按 kind 自行过滤
	cmds := make([]tea.Cmd, 0, len(m.pages))
	for _, p := range m.pages {
		cmds = append(cmds, p.update(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	tabs := make([]string, 0, len(m.pages))
	for i, p := range m.pages {
		style := tabStyle
		if i == m.active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(p.title()))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("assetdash"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	b.WriteString(m.pages[m.active].view(m.width-4, m.height-6))
	return docStyle.Render(b.String())
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/pkg/listview"
)

// 占位行数，加载中用于保持布局
const placeholderRows = 5

func (p *listPage[T]) view(width, height int) string {
	var b strings.Builder
	b.WriteString(p.toolbar())
	b.WriteString("\n\n")

	switch p.phase {
	case phaseIdle, phaseLoading:
		b.WriteString(p.spinner.View() + " Loading " + p.cfg.title + "...\n\n")
		for range placeholderRows {
			b.WriteString(placeholderStyle.Render(strings.Repeat("░", max(10, min(width, 80)))) + "\n")
		}
	case phaseError:
		msg := fmt.Sprintf("Failed to load %s\n\n%v\n\nPress r to retry.", p.cfg.title, p.err)
		b.WriteString(errorPanelStyle.Render(msg))
		b.WriteString("\n")
	default:
		if len(p.ctrl.Filtered()) == 0 {
			b.WriteString(panelStyle.Render("No " + p.cfg.title + " match the current search and filters."))
			b.WriteString("\n")
		} else if p.mode == entity.ViewModeGrid && p.cfg.card != nil {
			b.WriteString(p.gridView(width))
		} else {
			b.WriteString(p.tableView(height))
		}
		b.WriteString(p.pager())
	}

	if p.prompt != nil {
		b.WriteString("\n" + promptStyle.Render(p.prompt.input.View()) + "\n")
	}
	if p.status != "" {
		style := errorStyle
		if p.statusOK {
			style = successStyle
		}
		b.WriteString("\n" + style.Render(p.status) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(p.help()))
	return b.String()
}

func (p *listPage[T]) toolbar() string {
	parts := []string{}
	if p.searching || p.search.Value() != "" {
		parts = append(parts, p.search.View())
	} else {
		parts = append(parts, helpStyle.Render("/ search"))
	}
	if f := p.cfg.filter; f != nil {
		value := f.current
		if value == "" {
			value = listview.FilterAll
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f.name, value))
	}
	if p.dateDesc != "" {
		parts = append(parts, "dates: "+p.dateDesc)
	}
	parts = append(parts, "sort: "+string(p.ctrl.Order()))
	if p.cfg.viewMode != nil {
		parts = append(parts, "view: "+string(p.mode))
	}
	return strings.Join(parts, "   ")
}

func (p *listPage[T]) tableView(height int) string {
	var b strings.Builder

	cells := make([]string, 0, len(p.cfg.columns))
	for _, c := range p.cfg.columns {
		cells = append(cells, cell(c.title, c.width, lipgloss.NewStyle()))
	}
	b.WriteString(headerStyle.Render(strings.Join(cells, " ")))
	b.WriteString("\n")

	visible := p.ctrl.Visible()
	rows := max(1, height-10)
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+rows {
		p.offset = p.cursor - rows + 1
	}
	end := min(len(visible), p.offset+rows)

	for i := p.offset; i < end; i++ {
		item := visible[i]
		cells = cells[:0]
		for _, c := range p.cfg.columns {
			style := lipgloss.NewStyle()
			if c.style != nil && i != p.cursor {
				style = c.style(item)
			}
			cells = append(cells, cell(c.value(item), c.width, style))
		}
		line := strings.Join(cells, " ")
		if i == p.cursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
		if p.ctrl.IsExpanded(p.ctrl.ID(item)) && p.cfg.detail != nil {
			for _, d := range p.cfg.detail(item) {
				b.WriteString(detailStyle.Render(d) + "\n")
			}
		}
	}
	return b.String()
}

func (p *listPage[T]) gridView(width int) string {
	perRow := max(1, width/(cardStyle.GetWidth()+2))
	visible := p.ctrl.Visible()

	var rows []string
	for start := 0; start < len(visible); start += perRow {
		end := min(len(visible), start+perRow)
		cards := make([]string, 0, perRow)
		for i := start; i < end; i++ {
			style := cardStyle
			if i == p.cursor {
				style = selectedCardStyle
			}
			cards = append(cards, style.Render(p.cfg.card(visible[i])))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (p *listPage[T]) pager() string {
	total := len(p.ctrl.Filtered())
	switch policy := p.ctrl.Policy().(type) {
	case *listview.Pages:
		return helpStyle.Render(fmt.Sprintf("\npage %d/%d · %d per page · %d total",
			policy.Page(), max(1, policy.TotalPages(total)), policy.Size(), total)) + "\n"
	case *listview.Reveal:
		shown := policy.Visible(total)
		if policy.HasMore(total) {
			return helpStyle.Render(fmt.Sprintf("\nshowing %d of %d · scroll down for more", shown, total)) + "\n"
		}
		return helpStyle.Render(fmt.Sprintf("\nshowing all %d", total)) + "\n"
	}
	return helpStyle.Render(fmt.Sprintf("\n%d total", total)) + "\n"
}

func (p *listPage[T]) help() string {
	switch {
	case p.prompt != nil:
		return "enter: save  esc: cancel"
	case p.searching:
		return "enter: done  esc: clear"
	case p.phase == phaseError:
		return "r: retry  tab: next  q: quit"
	}
	keys := []string{"↑/↓: move", "enter: expand", "/: search", "s: sort"}
	if p.cfg.filter != nil {
		keys = append(keys, "f: "+p.cfg.filter.name)
	}
	if _, ok := p.ctrl.Policy().(*listview.Pages); ok {
		keys = append(keys, "n/p: page")
		if len(p.cfg.pageSizes) > 0 {
			keys = append(keys, "+: page size")
		}
	}
	if p.cfg.dateField != nil {
		keys = append(keys, "d: dates")
	}
	if p.cfg.rename != nil {
		keys = append(keys, "e: rename")
	}
	if p.cfg.viewMode != nil {
		keys = append(keys, "v: table/grid")
	}
	keys = append(keys, "tab: next", "q: quit")
	return strings.Join(keys, "  ")
}

func cell(s string, width int, style lipgloss.Style) string {
	return style.Width(width).MaxWidth(width).Render(truncate(s, width))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

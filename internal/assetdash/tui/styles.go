package tui

import "github.com/charmbracelet/lipgloss"

// 调色板
const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorSpecial   = lipgloss.Color("208")
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
	colorWhite     = lipgloss.Color("231")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	helpStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	specialStyle = lipgloss.NewStyle().Foreground(colorSpecial)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	tabStyle       = lipgloss.NewStyle().Foreground(colorSubtle).Padding(0, 2)
	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorHighlight).
			Bold(true).
			Padding(0, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorSubtle).
			BorderBottom(true)
	selectedRowStyle = lipgloss.NewStyle().Foreground(colorWhite).Background(colorHighlight)
	detailStyle      = lipgloss.NewStyle().Foreground(colorSubtle).PaddingLeft(4)
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)
	errorPanelStyle = panelStyle.
			BorderForeground(colorError).
			Foreground(colorError)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1).
			Width(30)
	selectedCardStyle = cardStyle.BorderForeground(colorHighlight)

	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorHighlight).
			Padding(0, 1)
)

// levelStyle 按分类值着色：好 / 注意 / 差
func levelStyle(value string) lipgloss.Style {
	switch value {
	case "active", "high", "hsm":
		return successStyle
	case "expiring", "medium":
		return specialStyle
	case "expired", "low", "software":
		return errorStyle
	}
	return lipgloss.NewStyle()
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/logsift/internal/batch"
)

// menuAction identifies a main menu entry.
type menuAction int

const (
	actionScanKnown menuAction = iota
	actionScanCustom
	actionAnalyzeAll
	actionQuit
)

type menuItem struct {
	action menuAction
	label  string
}

func (m Model) menuItems() []menuItem {
	return []menuItem{
		{actionScanKnown, "Scan latest log in " + m.config.LogDir},
		{actionScanCustom, "Scan a custom path"},
		{actionAnalyzeAll, "Analyze all logs in a directory"},
		{actionQuit, "Quit"},
	}
}

// handleMenuKey processes keyboard input for the main menu.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.menuItems()

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(items)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Select):
		return m.runMenuAction(items[m.selected].action)
	default:
		// Digits jump straight to an entry.
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(items) {
			m.selected = int(s[0] - '1')
			return m.runMenuAction(items[m.selected].action)
		}
	}
	return m, nil
}

func (m Model) runMenuAction(action menuAction) (tea.Model, tea.Cmd) {
	switch action {
	case actionScanKnown:
		latest, err := batch.Latest(m.config.LogDir, m.config.LogPattern)
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		return m.startScanPath(latest)

	case actionScanCustom:
		return m.openInput(inputScanPath, m.prefs.LastPath, "Path to a log file or directory")

	case actionAnalyzeAll:
		return m.openInput(inputBatchDir, m.config.LogDir, "Directory to analyze")

	case actionQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) openInput(purpose inputPurpose, value, placeholder string) (tea.Model, tea.Cmd) {
	m.purpose = purpose
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.currentView = ViewInput
	m.status = ""
	m.statusIsErr = false
	cmd := m.input.Focus()
	return m, cmd
}

// renderMenu renders the main menu list.
func (m Model) renderMenu() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("What would you like to do?"))
	b.WriteString("\n\n")
	for i, item := range m.menuItems() {
		line := " " + string(rune('1'+i)) + ". " + item.label + " "
		if i == m.selected {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderInput renders the path prompt.
func (m Model) renderInput() string {
	styles := m.theme.Styles()
	title := "Scan a custom path"
	if m.purpose == inputBatchDir {
		title = "Analyze all logs in a directory"
	}
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter to start, esc to cancel"))
	return b.String()
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/logsift/internal/errcode"
	"github.com/five82/logsift/internal/scan"
)

// renderHeader renders the top bar: logo, table size, log directory.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	tableSize := 0
	if m.scanner != nil {
		tableSize = m.scanner.Resolver().Len()
	}
	codes := bg.Render(fmt.Sprintf("%d codes", tableSize), styles.Text)
	if tableSize == 0 {
		codes = bg.Render("no code table", styles.WarningText)
	}

	parts := []string{
		bg.Render("logsift", styles.Logo),
		codes,
		bg.Render("limit", styles.FaintText) + bg.Spaces(1) +
			bg.Render(fmt.Sprintf("%d", m.config.MaxLines), styles.Text),
		bg.Render("dir", styles.FaintText) + bg.Spaces(1) +
			bg.Render(truncateMiddle(m.config.LogDir, 50), styles.MutedText),
	}
	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderCommandBar lists the keys that apply to the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	var hints []string
	switch m.currentView {
	case ViewMenu:
		hints = []string{"↑↓ move", "enter select", "1-4 jump", "T theme", "? help", "q quit"}
	case ViewInput:
		hints = []string{"enter start", "esc cancel"}
	case ViewRunning:
		hints = []string{"ctrl+c quit"}
	case ViewResult:
		hints = []string{"↑↓ scroll", "s save", "esc menu", "? help", "q quit"}
	}
	return styles.Footer.Width(m.width).Render(strings.Join(hints, "  "))
}

// renderStatus renders the last status or error message.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	if m.status == "" {
		return ""
	}
	if m.statusIsErr {
		return styles.DangerText.Render(m.status)
	}
	return styles.MutedText.Render(m.status)
}

// renderSummary colours a scan summary for the result pager.
func (m Model) renderSummary(res scan.Result) string {
	styles := m.theme.Styles()
	if !res.Found {
		return styles.SuccessText.Render("No errors found in " + res.Path)
	}

	var b strings.Builder
	for i, block := range res.Summary.Blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.Text.Render(block.Line))
		if !block.HasCode() {
			continue
		}
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Error Code: "))
		b.WriteString(styles.AccentText.Render(block.Code))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Message: "))
		b.WriteString(m.messageStyle(block.Description).Render(block.Description.Text))
	}
	return b.String()
}

func (m Model) messageStyle(d errcode.Description) lipgloss.Style {
	return m.theme.Styles().SourceStyle(string(d.Source))
}

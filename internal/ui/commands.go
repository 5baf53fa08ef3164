package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/logsift/internal/batch"
	"github.com/five82/logsift/internal/scan"
)

// Messages

type scanDoneMsg struct {
	result scan.Result
	err    error
}

type batchDoneMsg struct {
	report batch.Report
	err    error
}

// Commands

func scanCmd(scanner *scan.Scanner, path string, maxLines int) tea.Cmd {
	return func() tea.Msg {
		res, err := scanner.Scan(path, maxLines)
		if res.Path == "" {
			res.Path = path
		}
		return scanDoneMsg{result: res, err: err}
	}
}

func batchCmd(runner *batch.Runner, dir, pattern string, maxLines int) tea.Cmd {
	return func() tea.Msg {
		report, err := runner.Run(dir, pattern, maxLines)
		return batchDoneMsg{report: report, err: err}
	}
}

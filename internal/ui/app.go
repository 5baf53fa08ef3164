package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/logsift/internal/batch"
	"github.com/five82/logsift/internal/config"
	"github.com/five82/logsift/internal/prefs"
	"github.com/five82/logsift/internal/scan"
	"github.com/five82/logsift/internal/summary"
)

// View represents the current active view.
type View int

const (
	ViewMenu View = iota
	ViewInput
	ViewRunning
	ViewResult
)

// inputPurpose records what the path prompt is collecting.
type inputPurpose int

const (
	inputScanPath inputPurpose = iota
	inputBatchDir
)

// Options configures the UI.
type Options struct {
	Scanner   *scan.Scanner
	Writer    *summary.Writer
	Batch     *batch.Runner
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	scanner   *scan.Scanner
	writer    *summary.Writer
	runner    *batch.Runner
	config    config.Config
	prefs     prefs.Prefs
	prefsPath string
	logger    *slog.Logger
	keys      keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	status      string
	statusIsErr bool

	// Menu state
	selected int

	// Input state
	input   textinput.Model
	purpose inputPurpose

	// Result state
	resultViewport viewport.Model
	result         *scan.Result
	report         *batch.Report
	saved          bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 1024

	return Model{
		scanner:     opts.Scanner,
		writer:      opts.Writer,
		runner:      opts.Batch,
		config:      opts.Config,
		prefs:       opts.Prefs,
		prefsPath:   prefsPath,
		logger:      logger,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.Prefs.Theme),
		currentView: ViewMenu,
		input:       ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.resultViewport = viewport.New(msg.Width, m.contentHeight())
		}
		m.ready = true
		m.resultViewport.Width = msg.Width
		m.resultViewport.Height = m.contentHeight()
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case scanDoneMsg:
		return m.handleScanDone(msg), nil

	case batchDoneMsg:
		return m.handleBatchDone(msg), nil
	}

	if m.currentView == ViewInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// The path prompt owns every printable key.
	if m.currentView == ViewInput {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		// Only one scan may be in flight; stay put until it reports back.
		if m.currentView != ViewRunning {
			m.currentView = ViewMenu
		}
		return m, nil
	}

	switch m.currentView {
	case ViewMenu:
		return m.handleMenuKey(msg)
	case ViewResult:
		return m.handleResultKey(msg)
	}

	return m, nil
}

// handleInputKey processes keys while the path prompt is focused.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.input.Blur()
		m.currentView = ViewMenu
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			m.setError("enter a path")
			return m, nil
		}
		m.input.Blur()
		expanded, err := config.ExpandPath(path)
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		if m.purpose == inputBatchDir {
			return m.startBatch(expanded)
		}
		m.prefs.LastPath = expanded
		m.savePrefs()
		return m.startScanPath(expanded)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResultKey processes keyboard input for the result pager.
func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.saveResult()
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.resultViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.resultViewport.GotoBottom()
		return m, nil
	}

	// Scrolling keys are handled by the viewport's own key map.
	var cmd tea.Cmd
	m.resultViewport, cmd = m.resultViewport.Update(msg)
	return m, cmd
}

// startScanPath scans path, or the newest log inside it when path is a directory.
func (m Model) startScanPath(path string) (tea.Model, tea.Cmd) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		latest, err := batch.Latest(path, m.config.LogPattern)
		if err != nil {
			m.setError(err.Error())
			m.currentView = ViewMenu
			return m, nil
		}
		path = latest
	}
	m.currentView = ViewRunning
	m.status = "Scanning " + path
	m.statusIsErr = false
	return m, scanCmd(m.scanner, path, m.config.MaxLines)
}

func (m Model) startBatch(dir string) (tea.Model, tea.Cmd) {
	if m.runner == nil {
		m.setError("batch analysis is not available")
		m.currentView = ViewMenu
		return m, nil
	}
	m.currentView = ViewRunning
	m.status = "Analyzing " + dir
	m.statusIsErr = false
	return m, batchCmd(m.runner, dir, m.config.LogPattern, m.config.MaxLines)
}

func (m Model) handleScanDone(msg scanDoneMsg) Model {
	if msg.err != nil {
		m.logger.Warn("scan failed", "path", msg.result.Path, "error", msg.err)
		m.setError(msg.err.Error())
		m.currentView = ViewMenu
		return m
	}
	res := msg.result
	m.result = &res
	m.report = nil
	m.saved = false
	m.currentView = ViewResult
	if res.Found {
		m.setStatus(fmt.Sprintf("%d error lines in %s", len(res.Summary.Blocks), res.Path))
	} else {
		m.setStatus("No errors found in " + res.Path)
	}
	m.resultViewport.SetContent(m.renderSummary(res))
	m.resultViewport.GotoTop()
	m.logger.Info("scan finished", "path", res.Path, "found", res.Found, "lines", len(res.Summary.Blocks))
	return m
}

func (m Model) handleBatchDone(msg batchDoneMsg) Model {
	if msg.err != nil {
		m.logger.Warn("batch failed", "error", msg.err)
		m.setError(msg.err.Error())
		m.currentView = ViewMenu
		return m
	}
	report := msg.report
	m.report = &report
	m.result = nil
	m.saved = true
	m.currentView = ViewResult
	m.setStatus("Batch report written to " + report.ReportPath)
	m.resultViewport.SetContent(report.Text())
	m.resultViewport.GotoTop()
	return m
}

// saveResult persists the scan currently shown.
func (m *Model) saveResult() {
	if m.result == nil || m.saved || m.writer == nil {
		return
	}
	var (
		path string
		err  error
	)
	if m.result.Found {
		path, err = m.writer.Write(*m.result)
	} else {
		path, err = m.writer.WriteNoErrors(m.result.Path)
	}
	if err != nil {
		m.logger.Error("save summary failed", "error", err)
		m.setError(err.Error())
		return
	}
	m.saved = true
	m.setStatus("Summary saved to " + path)
}

func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusIsErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusIsErr = true
}

// contentHeight leaves room for the header, command bar and status line.
func (m Model) contentHeight() int {
	return max(m.height-3, 1)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewMenu:
		return m.renderMenu()
	case ViewInput:
		return m.renderInput()
	case ViewRunning:
		return m.theme.Styles().MutedText.Render("Working...")
	case ViewResult:
		return m.resultViewport.View()
	default:
		return ""
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

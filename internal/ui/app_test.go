package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/logsift/internal/batch"
	"github.com/five82/logsift/internal/config"
	"github.com/five82/logsift/internal/errcode"
	"github.com/five82/logsift/internal/prefs"
	"github.com/five82/logsift/internal/scan"
	"github.com/five82/logsift/internal/summary"
)

type fixture struct {
	logDir     string
	summaryDir string
	prefsPath  string
	model      Model
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	logDir := filepath.Join(root, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "ok line\nInfo Failed to open key 0x00000005\nall good\n"
	if err := os.WriteFile(filepath.Join(logDir, "cbs.log"), []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	cfg := config.Default()
	cfg.LogDir = logDir
	cfg.SummaryDir = filepath.Join(root, "summaries")
	cfg.LogPattern = "*.log"
	cfg.MaxLines = 100

	scanner := scan.New(errcode.New(errcode.Table{"0x00000005": "Access is denied."}, nil))
	writer := summary.NewWriter(cfg.SummaryDir)
	writer.Now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }

	prefsPath := filepath.Join(root, "prefs.toml")
	m := New(Options{
		Scanner:   scanner,
		Writer:    writer,
		Batch:     &batch.Runner{Scanner: scanner, Writer: writer},
		Config:    cfg,
		Prefs:     prefs.Prefs{Theme: "Nightfox"},
		PrefsPath: prefsPath,
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return fixture{
		logDir:     logDir,
		summaryDir: cfg.SummaryDir,
		prefsPath:  prefsPath,
		model:      updated.(Model),
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

// finish runs a background command and feeds its message back to the model.
func finish(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	m, _ = press(t, m, cmd())
	return m
}

func TestMenuNavigation(t *testing.T) {
	m := newFixture(t).model

	m, _ = press(t, m, runes("j"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 2 {
		t.Fatalf("selected = %d, want 2", m.selected)
	}
	m, _ = press(t, m, runes("k"))
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1", m.selected)
	}
	for i := 0; i < 10; i++ {
		m, _ = press(t, m, runes("j"))
	}
	if m.selected != len(m.menuItems())-1 {
		t.Fatalf("selected = %d, want last entry", m.selected)
	}
}

func TestScanLatestLog(t *testing.T) {
	f := newFixture(t)
	m, cmd := press(t, f.model, runes("1"))
	if m.currentView != ViewRunning {
		t.Fatalf("view = %v, want ViewRunning", m.currentView)
	}
	m = finish(t, m, cmd)

	if m.currentView != ViewResult {
		t.Fatalf("view = %v, want ViewResult (status %q)", m.currentView, m.status)
	}
	if m.result == nil || !m.result.Found {
		t.Fatalf("result = %+v, want errors found", m.result)
	}
	block := m.result.Summary.Blocks[0]
	if block.Code != "0x00000005" || block.Description.Text != "Access is denied." {
		t.Fatalf("block = %+v", block)
	}
	if !strings.Contains(m.resultViewport.View(), "Access is denied.") {
		t.Fatal("result pager does not show the decoded message")
	}
}

func TestSaveResult(t *testing.T) {
	f := newFixture(t)
	m, cmd := press(t, f.model, runes("1"))
	m = finish(t, m, cmd)

	m, _ = press(t, m, runes("s"))
	if m.statusIsErr {
		t.Fatalf("save failed: %s", m.status)
	}
	want := filepath.Join(f.summaryDir, "cbs_summary_20240301_093000.txt")
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if !strings.Contains(string(data), "Message: Access is denied.") {
		t.Fatalf("summary = %q", data)
	}

	// A second save is a no-op.
	m, _ = press(t, m, runes("s"))
	if !m.saved {
		t.Fatal("saved flag cleared")
	}
}

func TestCustomPathInput(t *testing.T) {
	f := newFixture(t)
	m, _ := press(t, f.model, runes("2"))
	if m.currentView != ViewInput || m.purpose != inputScanPath {
		t.Fatalf("view = %v purpose = %v, want scan path prompt", m.currentView, m.purpose)
	}

	// Keys typed into the prompt are not treated as shortcuts.
	m.input.SetValue("")
	m, _ = press(t, m, runes("q"))
	if m.currentView != ViewInput || m.input.Value() != "q" {
		t.Fatalf("view = %v value = %q", m.currentView, m.input.Value())
	}

	m.input.SetValue(f.logDir)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = finish(t, m, cmd)
	if m.result == nil || filepath.Base(m.result.Path) != "cbs.log" {
		t.Fatalf("result = %+v, want newest log in directory", m.result)
	}

	saved := prefs.Load(f.prefsPath)
	if saved.LastPath != f.logDir {
		t.Fatalf("LastPath = %q, want %q", saved.LastPath, f.logDir)
	}
}

func TestInputEscapeReturnsToMenu(t *testing.T) {
	m, _ := press(t, newFixture(t).model, runes("3"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.currentView != ViewMenu {
		t.Fatalf("view = %v, want ViewMenu", m.currentView)
	}
}

func TestEmptyInputIsRejected(t *testing.T) {
	m, _ := press(t, newFixture(t).model, runes("2"))
	m.input.SetValue("   ")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || !m.statusIsErr || m.currentView != ViewInput {
		t.Fatalf("view = %v status = %q err = %v", m.currentView, m.status, m.statusIsErr)
	}
}

func TestScanMissingPathShowsError(t *testing.T) {
	f := newFixture(t)
	m, _ := press(t, f.model, runes("2"))
	m.input.SetValue(filepath.Join(f.logDir, "missing.log"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = finish(t, m, cmd)
	if m.currentView != ViewMenu || !m.statusIsErr {
		t.Fatalf("view = %v status = %q, want menu with error", m.currentView, m.status)
	}
}

func TestAnalyzeAll(t *testing.T) {
	f := newFixture(t)
	m, _ := press(t, f.model, runes("3"))
	if m.purpose != inputBatchDir || m.input.Value() != f.logDir {
		t.Fatalf("purpose = %v value = %q", m.purpose, m.input.Value())
	}
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = finish(t, m, cmd)

	if m.report == nil {
		t.Fatalf("no report (status %q)", m.status)
	}
	if _, err := os.Stat(m.report.ReportPath); err != nil {
		t.Fatalf("batch report missing: %v", err)
	}
}

func TestCycleThemePersists(t *testing.T) {
	f := newFixture(t)
	m, _ := press(t, f.model, runes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if got := prefs.Load(f.prefsPath).Theme; got != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", got)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := press(t, newFixture(t).model, runes("?"))
	if !m.showHelp {
		t.Fatal("help not shown")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatal("help view missing title")
	}
	m, _ = press(t, m, runes("x"))
	if m.showHelp {
		t.Fatal("help still shown")
	}
}

func TestViewBeforeResize(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}

func TestRenderSummaryNoErrors(t *testing.T) {
	m := newFixture(t).model
	out := m.renderSummary(scan.Result{Path: "/x/clean.log"})
	if !strings.Contains(out, "No errors found in /x/clean.log") {
		t.Fatalf("renderSummary = %q", out)
	}
}

func TestBackIgnoredWhileRunning(t *testing.T) {
	f := newFixture(t)
	m, cmd := press(t, f.model, runes("1"))
	if m.currentView != ViewRunning {
		t.Fatalf("view = %v, want ViewRunning", m.currentView)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.currentView != ViewRunning {
		t.Fatalf("view after esc = %v, want ViewRunning", m.currentView)
	}
	// Menu shortcuts cannot start a second scan either.
	m, second := press(t, m, runes("1"))
	if second != nil || m.currentView != ViewRunning {
		t.Fatalf("second scan started: view = %v", m.currentView)
	}

	m = finish(t, m, cmd)
	if m.currentView != ViewResult {
		t.Fatalf("view = %v, want ViewResult", m.currentView)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.currentView != ViewMenu {
		t.Fatalf("view after esc = %v, want ViewMenu", m.currentView)
	}
}

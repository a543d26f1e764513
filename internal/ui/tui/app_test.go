package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhill1/circlekit/internal/domain"
	"github.com/jhill1/circlekit/internal/usecase"
)

type fakeLocator struct {
	root string
	err  error
}

func (f fakeLocator) FindRoot(string) (string, error) { return f.root, f.err }

type fakeLoader struct {
	cfg   domain.Config
	err   error
	roots *[]string
}

func (f fakeLoader) LoadConfig(root string) (domain.Config, error) {
	if f.roots != nil {
		*f.roots = append(*f.roots, root)
	}
	return f.cfg, f.err
}

func testDeps() Deps {
	return Deps{
		ConfigLocator: fakeLocator{root: "/proj"},
		ConfigLoader:  fakeLoader{cfg: domain.DefaultConfig()},
		Measure:       usecase.NewMeasureCircles(),
	}
}

func submit(t *testing.T, m model, input string) model {
	t.Helper()
	m.input.SetValue(input)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a measure command for %q", input)
	}
	msg, ok := cmd().(measuredMsg)
	if !ok {
		t.Fatalf("expected measuredMsg for %q", input)
	}

	next, _ = next.(model).Update(msg)
	return next.(model)
}

func TestEnter_MeasuresRadius(t *testing.T) {
	m := submit(t, newModel(testDeps()), "2")

	if m.last == nil {
		t.Fatal("expected a measurement")
	}
	if m.last.Area != 12.56 || m.last.Perimeter != 12.56 {
		t.Fatalf("unexpected measurement: %+v", *m.last)
	}
	if len(m.history.Items()) != 1 {
		t.Fatalf("expected 1 history item, got %d", len(m.history.Items()))
	}
	if m.input.Value() != "" {
		t.Fatalf("expected input cleared, got %q", m.input.Value())
	}
	if m.toast != "" {
		t.Fatalf("expected no toast, got %q", m.toast)
	}
}

func TestEnter_NewestFirstInHistory(t *testing.T) {
	m := submit(t, newModel(testDeps()), "1")
	m = submit(t, m, "2")

	items := m.history.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 history items, got %d", len(items))
	}
	if got := items[0].(historyItem).Title(); got != "Circle(radius=2)" {
		t.Fatalf("expected newest first, got %q", got)
	}
}

func TestEnter_RejectsNonPositive(t *testing.T) {
	m := submit(t, newModel(testDeps()), "-5")

	if m.last != nil {
		t.Fatalf("expected no measurement, got %+v", *m.last)
	}
	if m.toast != "Radius must be a positive number" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
	if len(m.history.Items()) != 0 {
		t.Fatal("expected empty history")
	}
}

func TestEnter_RejectsNonNumber(t *testing.T) {
	m := submit(t, newModel(testDeps()), "abc")
	if m.toast != "Radius must be a number" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestEnter_EmptyInputIsIgnored(t *testing.T) {
	m := newModel(testDeps())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected no command for empty input")
	}
}

func TestEsc_Quits(t *testing.T) {
	m := newModel(testDeps())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestConfigLoaded_AppliesPrecision(t *testing.T) {
	m := newModel(testDeps())
	cfg := domain.DefaultConfig()
	cfg.Output.Precision = 1

	next, _ := m.Update(configLoadedMsg{root: "/proj", cfg: cfg})
	m = submit(t, next.(model), "2")

	view := m.View()
	if !strings.Contains(view, "12.6") {
		t.Fatalf("expected rounded values in view, got:\n%s", view)
	}
	if !strings.Contains(view, "/proj") {
		t.Fatalf("expected config root in view, got:\n%s", view)
	}
}

func TestConfigLoaded_ErrorShowsToast(t *testing.T) {
	m := newModel(testDeps())
	err := &domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: "/proj/circlekit.yaml", Err: errors.New("yaml: line 3: did not find expected key")}

	next, _ := m.Update(configLoadedMsg{err: err})
	if got := next.(model).toast; got != "Invalid YAML at circlekit.yaml line 3" {
		t.Fatalf("unexpected toast %q", got)
	}
}

func TestCmdLoadConfig_UsesLocatorRoot(t *testing.T) {
	var roots []string
	cfg := domain.DefaultConfig()
	cfg.Output.Precision = 2
	deps := Deps{
		ConfigLocator: fakeLocator{root: "/proj"},
		ConfigLoader:  fakeLoader{cfg: cfg, roots: &roots},
	}

	msg, ok := cmdLoadConfig(deps)().(configLoadedMsg)
	if !ok {
		t.Fatal("expected configLoadedMsg")
	}
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}
	if msg.root != "/proj" || msg.cfg.Output.Precision != 2 {
		t.Fatalf("unexpected msg: %+v", msg)
	}
	if len(roots) != 1 || roots[0] != "/proj" {
		t.Fatalf("expected loader called with /proj, got %v", roots)
	}
}

func TestCmdLoadConfig_FallsBackToWorkingDir(t *testing.T) {
	var roots []string
	deps := Deps{
		ConfigLocator: fakeLocator{err: domain.ErrNotFound},
		ConfigLoader:  fakeLoader{cfg: domain.DefaultConfig(), roots: &roots},
	}

	msg := cmdLoadConfig(deps)().(configLoadedMsg)
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}
	if len(roots) != 1 || roots[0] == "" {
		t.Fatalf("expected loader called with working dir, got %v", roots)
	}
}

func TestCmdMeasure_NilUseCase(t *testing.T) {
	msg := cmdMeasure(Deps{}, "2")().(measuredMsg)
	if msg.err == nil {
		t.Fatal("expected error for nil use case")
	}
}

func TestSafeModel_DelegatesUpdate(t *testing.T) {
	s := wrapSafe(newModel(testDeps()), nil)
	s.m.input.SetValue("3")

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command")
	}
	next, _ = next.Update(cmd())

	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if sm.m.last == nil || sm.m.last.Radius != 3 {
		t.Fatalf("expected measurement for radius 3")
	}
	if !strings.Contains(sm.View(), "Circle(radius=3)") {
		t.Fatalf("expected circle label in view")
	}
}

func TestCmdLoadConfig_ExplicitDirSkipsLocator(t *testing.T) {
	var roots []string
	deps := Deps{
		ConfigLocator: fakeLocator{root: "/proj"},
		ConfigLoader:  fakeLoader{cfg: domain.DefaultConfig(), roots: &roots},
		ConfigDir:     "/explicit",
	}

	msg := cmdLoadConfig(deps)().(configLoadedMsg)
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}
	if msg.root != "/explicit" {
		t.Fatalf("expected root /explicit, got %q", msg.root)
	}
	if len(roots) != 1 || roots[0] != "/explicit" {
		t.Fatalf("expected loader called with /explicit, got %v", roots)
	}
}

func TestView_ShowsDebugLogPath(t *testing.T) {
	deps := testDeps()
	if strings.Contains(newModel(deps).View(), "Debug log:") {
		t.Fatal("expected no log path without debug logging")
	}

	deps.LogPath = "/proj/.circlekit/logs/circlekit.log"
	view := newModel(deps).View()
	if !strings.Contains(view, "Debug log:") || !strings.Contains(view, "circlekit.log") {
		t.Fatalf("expected log path in view, got:\n%s", view)
	}
}

func TestEnter_RejectsOverflowingRadius(t *testing.T) {
	for _, in := range []string{"1e200", "1e400", "inf"} {
		m := submit(t, newModel(testDeps()), in)
		if m.last != nil {
			t.Fatalf("%s: expected no measurement, got %+v", in, *m.last)
		}
		if m.toast != "Radius is too large" {
			t.Fatalf("%s: unexpected toast %q", in, m.toast)
		}
	}
}

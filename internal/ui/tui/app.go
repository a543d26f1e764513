package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jhill1/circlekit/internal/domain"
)

type historyItem struct {
	m         domain.Measurement
	precision int
}

func (h historyItem) Title() string { return circleLabel(h.m) }
func (h historyItem) Description() string {
	return fmt.Sprintf("area %s • perimeter %s",
		domain.FormatNumber(h.m.Area, h.precision),
		domain.FormatNumber(h.m.Perimeter, h.precision),
	)
}
func (h historyItem) FilterValue() string { return h.Title() }

type model struct {
	theme Theme
	deps  Deps

	input   textinput.Model
	history list.Model

	last      *domain.Measurement
	precision int

	configRoot string
	toast      string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	ti := textinput.New()
	ti.Placeholder = "radius, e.g. 2.5"
	ti.CharLimit = 32
	ti.Width = 24
	ti.Prompt = "radius › "
	ti.Focus()

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "History"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		theme:     DefaultTheme(),
		deps:      deps,
		input:     ti,
		history:   l,
		precision: domain.DefaultConfig().Output.Precision,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdLoadConfig(m.deps))
}

func (m model) logger() *slog.Logger {
	if m.deps.Logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return m.deps.Logger
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width-4, msg.Height-18
		if w < 0 {
			w = 0
		}
		if h < 0 {
			h = 0
		}
		m.history.SetSize(w, h)
		return m, nil

	case configLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.logger().Warn("config.load.failed", "err", msg.err.Error())
			return m, nil
		}
		m.configRoot = msg.root
		m.precision = msg.cfg.Output.Precision
		return m, nil

	case measuredMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.logger().Info("measure.rejected", "input", msg.input, "err", msg.err.Error())
			return m, nil
		}
		mm := msg.measurement
		m.last = &mm
		m.toast = ""
		m.input.SetValue("")
		m.logger().Debug("measure.done", "radius", mm.Radius, "area", mm.Area, "perimeter", mm.Perimeter)
		cmd := m.history.InsertItem(0, historyItem{m: mm, precision: m.precision})
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			v := strings.TrimSpace(m.input.Value())
			if v == "" {
				return m, nil
			}
			return m, cmdMeasure(m.deps, v)

		case "up", "down":
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("circlekit") + "\n" +
		m.theme.Subtitle.Render("Circle area and perimeter (π ≈ 3.14)") + "\n"

	var banner string
	if m.configRoot != "" {
		banner = m.theme.Help.Render("Config: " + clampString(m.configRoot, 60))
	} else {
		banner = m.theme.Help.Render("Using default settings")
	}
	if m.deps.LogPath != "" {
		banner += "\n" + m.theme.Help.Render("Debug log: "+clampString(m.deps.LogPath, 60))
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(banner)
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.toast != "" {
		b.WriteString(m.theme.Toast.Render("⚠ " + m.toast))
		b.WriteString("\n")
	}

	if m.last != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.Card.Render(renderMeasurement(m.theme, *m.last, m.precision)))
		b.WriteString("\n")
	}

	if len(m.history.Items()) > 0 {
		b.WriteString("\n")
		b.WriteString(m.history.View())
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Help.Render("enter measure • ↑/↓ history • esc quit"))
	return wrap.Render(b.String())
}

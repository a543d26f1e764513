package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdLoadConfig(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.ConfigLoader == nil {
			return configLoadedMsg{err: errors.New("ConfigLoader is nil")}
		}

		if deps.ConfigDir != "" {
			cfg, err := deps.ConfigLoader.LoadConfig(deps.ConfigDir)
			return configLoadedMsg{root: deps.ConfigDir, cfg: cfg, err: err}
		}

		wd, err := os.Getwd()
		if err != nil {
			return configLoadedMsg{err: fmt.Errorf("getwd: %w", err)}
		}

		root := wd
		if deps.ConfigLocator != nil {
			if found, ferr := deps.ConfigLocator.FindRoot(wd); ferr == nil {
				root = found
			}
		}

		cfg, err := deps.ConfigLoader.LoadConfig(root)
		return configLoadedMsg{root: root, cfg: cfg, err: err}
	}
}

func cmdMeasure(deps Deps, input string) tea.Cmd {
	return func() tea.Msg {
		if deps.Measure == nil {
			return measuredMsg{input: input, err: errors.New("Measure use case is nil")}
		}

		out, err := deps.Measure.MeasureStrings(context.Background(), []string{input})
		if err != nil {
			return measuredMsg{input: input, err: err}
		}
		return measuredMsg{input: input, measurement: out[0]}
	}
}

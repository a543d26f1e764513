package tui

import (
	"log/slog"

	"github.com/jhill1/circlekit/internal/ports"
	"github.com/jhill1/circlekit/internal/usecase"
)

type Deps struct {
	ConfigLocator ports.ConfigLocator
	ConfigLoader  ports.ConfigLoader
	Measure       *usecase.MeasureCircles

	// ConfigDir, when set, is used as the config root as-is and the locator is skipped.
	ConfigDir string

	Logger  *slog.Logger
	LogPath string
}

package tui

import "github.com/jhill1/circlekit/internal/domain"

type configLoadedMsg struct {
	root string
	cfg  domain.Config
	err  error
}

type measuredMsg struct {
	input       string
	measurement domain.Measurement
	err         error
}

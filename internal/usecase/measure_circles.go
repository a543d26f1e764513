package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jhill1/circlekit/internal/domain"
)

type MeasureCircles struct {
	build func(radius float64) (domain.Circle, error)
}

type MeasureOption func(*MeasureCircles)

// WithBuilder overrides how circles are constructed (useful for tests).
func WithBuilder(build func(radius float64) (domain.Circle, error)) MeasureOption {
	return func(uc *MeasureCircles) {
		if build != nil {
			uc.build = build
		}
	}
}

func NewMeasureCircles(opts ...MeasureOption) *MeasureCircles {
	uc := &MeasureCircles{build: domain.NewCircle}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute builds one circle per radius and returns their measurements in input order.
// It stops at the first invalid radius; the returned error names its position and
// keeps the domain kind. A radius whose area or perimeter overflows float64 is
// rejected as invalid too, so every returned measurement is finite.
func (uc *MeasureCircles) Execute(ctx context.Context, radii []float64) ([]domain.Measurement, error) {
	if len(radii) == 0 {
		return nil, &domain.OpError{
			Op:   "usecase.measure",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("at least one radius is required"),
		}
	}

	out := make([]domain.Measurement, 0, len(radii))
	for i, r := range radii {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c, err := uc.build(r)
		if err != nil {
			return nil, fmt.Errorf("radius[%d]: %w", i, err)
		}
		m := c.Measure()
		if !finite(m) {
			return nil, fmt.Errorf("radius[%d]: %w", i, &domain.OpError{
				Op:   "measure.overflow",
				Kind: domain.KindInvalidRadius,
				Err:  fmt.Errorf("radius %s gives a non-finite area or perimeter", domain.FormatNumber(m.Radius, -1)),
			})
		}
		out = append(out, m)
	}

	return out, nil
}

func finite(m domain.Measurement) bool {
	return !math.IsInf(m.Area, 0) && !math.IsInf(m.Perimeter, 0)
}

// MeasureStrings parses raw radius arguments and measures them.
func (uc *MeasureCircles) MeasureStrings(ctx context.Context, args []string) ([]domain.Measurement, error) {
	radii := make([]float64, 0, len(args))
	for i, a := range args {
		r, err := domain.ParseRadius(a)
		if err != nil {
			return nil, fmt.Errorf("radius[%d]: %w", i, err)
		}
		radii = append(radii, r)
	}
	return uc.Execute(ctx, radii)
}

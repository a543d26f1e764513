package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/jhill1/circlekit/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func circleLabel(m domain.Measurement) string {
	return "Circle(radius=" + domain.FormatNumber(m.Radius, -1) + ")"
}

func renderMeasurement(t Theme, m domain.Measurement, precision int) string {
	var b strings.Builder

	b.WriteString(t.Title.Render(circleLabel(m)))
	b.WriteString("\n\n")
	b.WriteString(t.Label.Render("area:      "))
	b.WriteString(t.Value.Render(domain.FormatNumber(m.Area, precision)))
	b.WriteString("\n")
	b.WriteString(t.Label.Render("perimeter: "))
	b.WriteString(t.Value.Render(domain.FormatNumber(m.Perimeter, precision)))

	return b.String()
}

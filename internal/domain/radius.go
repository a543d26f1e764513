package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseRadius parses a user-supplied radius such as "2", " 2.5 " or "1e3".
// It only checks that the input is a number; positivity is enforced by
// NewCircle.
func ParseRadius(s string) (float64, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return 0, &OpError{
			Op:   "radius.parse",
			Kind: KindInvalidRadius,
			Err:  errors.New("radius is empty"),
		}
	}

	v, err := strconv.ParseFloat(in, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, &OpError{
			Op:   "radius.parse",
			Kind: KindInvalidRadius,
			Err:  fmt.Errorf("radius %q is out of range: %w", in, strconv.ErrRange),
		}
	}
	if err != nil {
		return 0, &OpError{
			Op:   "radius.parse",
			Kind: KindInvalidRadius,
			Err:  fmt.Errorf("radius %q is not a number", in),
		}
	}
	return v, nil
}

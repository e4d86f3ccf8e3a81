package model

import (
	"errors"
	"testing"
)

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"1mo", "3mo", "6mo", "1y", "2y", "5y"} {
		p, err := ParsePeriod(valid)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", valid, err)
		}
		if p.String() != valid {
			t.Errorf("%s: round trip gave %s", valid, p)
		}
	}

	for _, invalid := range []string{"", "7w", "6MO", "1 y", "max"} {
		if _, err := ParsePeriod(invalid); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%q: expected ErrInvalidInput, got %v", invalid, err)
		}
	}
}

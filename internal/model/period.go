package model

import "fmt"

// Period selects how much daily history to fetch for an analysis.
type Period string

const (
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
)

var validPeriods = map[Period]bool{
	Period1Mo: true,
	Period3Mo: true,
	Period6Mo: true,
	Period1Y:  true,
	Period2Y:  true,
	Period5Y:  true,
}

// ParsePeriod validates a period string from the CLI or API.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if !validPeriods[p] {
		return "", fmt.Errorf("%w: unknown period %q (want 1mo, 3mo, 6mo, 1y, 2y or 5y)", ErrInvalidInput, s)
	}
	return p, nil
}

func (p Period) String() string { return string(p) }

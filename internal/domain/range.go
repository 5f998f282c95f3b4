package domain

import "fmt"

// Range is a relative time window selector scoping all aggregate queries.
type Range string

const (
	Range7d  Range = "7d"
	Range30d Range = "30d"
	Range90d Range = "90d"
)

const DefaultRange = Range7d

// Ranges returns the accepted ranges, shortest first.
func Ranges() []Range {
	return []Range{Range7d, Range30d, Range90d}
}

// ParseRange accepts 7d, 30d or 90d. An empty string yields DefaultRange.
func ParseRange(s string) (Range, error) {
	if s == "" {
		return DefaultRange, nil
	}
	for _, r := range Ranges() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", &ValidationError{
		Field:   "range",
		Message: fmt.Sprintf("invalid range %q, use 7d, 30d or 90d", s),
	}
}

func (r Range) Label() string {
	switch r {
	case Range30d:
		return "Last 30 days"
	case Range90d:
		return "Last 90 days"
	default:
		return "Last 7 days"
	}
}

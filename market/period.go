package market

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Range maps a client period to the provider range parameter. The web client
// offers "1wk", which providers only understand as a day count.
func Range(period string) string {
	if period == "1wk" {
		return "7d"
	}
	return period
}

var periodPattern = regexp.MustCompile(`^(\d+)(d|wk|mo|y)$`)

// Lookback returns the start of the window a period names, counted back from now.
func Lookback(period string, now time.Time) (time.Time, error) {
	switch period {
	case "ytd":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	case "max":
		return time.Unix(0, 0).In(now.Location()), nil
	}
	m := periodPattern.FindStringSubmatch(period)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n == 0 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	switch m[2] {
	case "d":
		return now.AddDate(0, 0, -n), nil
	case "wk":
		return now.AddDate(0, 0, -7*n), nil
	case "mo":
		return now.AddDate(0, -n, 0), nil
	default:
		return now.AddDate(-n, 0, 0), nil
	}
}

package dashboard

import (
	"time"

	"github.com/rileyhilliard/cw/internal/errors"
)

// Timespan preset units.
const (
	UnitHour  = "hour"
	UnitDay   = "day"
	UnitWeek  = "week"
	UnitMonth = "month"
	UnitYear  = "year"
)

// TimespanUnits lists the presets in toolbar order.
var TimespanUnits = []string{UnitHour, UnitDay, UnitWeek, UnitMonth, UnitYear}

// DateRange is an explicit [Start, End] window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// AddTime moves t by n units. Months and years follow calendar arithmetic.
func AddTime(t time.Time, n int, unit string) (time.Time, error) {
	switch unit {
	case UnitHour:
		return t.Add(time.Duration(n) * time.Hour), nil
	case UnitDay:
		return t.AddDate(0, 0, n), nil
	case UnitWeek:
		return t.AddDate(0, 0, 7*n), nil
	case UnitMonth:
		return t.AddDate(0, n, 0), nil
	case UnitYear:
		return t.AddDate(n, 0, 0), nil
	}
	return t, errors.New(errors.ErrInput,
		"Unknown timespan unit: "+unit,
		"Use one of hour, day, week, month or year.")
}

// LastRange returns the window of one unit ending at now.
func LastRange(now time.Time, unit string) (DateRange, error) {
	start, err := AddTime(now, -1, unit)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: start, End: now}, nil
}

package services

import (
	"math"
	"time"
)

// Period keywords accepted by the reports endpoint.
const (
	PeriodToday     = "today"
	PeriodYesterday = "yesterday"
	PeriodWeek      = "week"
	PeriodMonth     = "month"
	PeriodQuarter   = "quarter"
	PeriodYear      = "year"
	PeriodCustom    = "custom"
)

// Layouts accepted for explicit custom bounds.
var instantLayouts = []string{time.RFC3339, "2006-01-02"}

// TimeWindow is a resolved [Start, End] reporting interval.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// ResolveTimeWindow turns a period keyword into a concrete window relative
// to now. Explicit startStr/endStr are consulted only for period=custom;
// an absent or unparsable bound silently keeps the default value, so a
// half-specified custom range still resolves.
func ResolveTimeWindow(period, startStr, endStr string, now time.Time) TimeWindow {
	end := now
	var start time.Time

	switch period {
	case PeriodToday:
		start = startOfDay(now)
	case PeriodYesterday:
		// Yesterday is a full-day window, not "yesterday until now".
		start = startOfDay(now).AddDate(0, 0, -1)
		end = startOfDay(now).Add(-time.Millisecond)
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodQuarter:
		start = now.AddDate(0, -3, 0)
	case PeriodYear:
		start = now.AddDate(-1, 0, 0)
	case PeriodCustom:
		start = now.AddDate(0, -1, 0)
		if t, ok := parseInstant(startStr); ok {
			start = t
		}
		if t, ok := parseInstant(endStr); ok {
			end = t
		}
	default: // month
		start = now.AddDate(0, -1, 0)
	}

	return TimeWindow{Start: start, End: end}
}

// Previous returns the window of equal length immediately before w, used
// for period-over-period comparisons.
func (w TimeWindow) Previous() TimeWindow {
	length := w.End.Sub(w.Start)
	return TimeWindow{Start: w.Start.Add(-length), End: w.Start}
}

// DaysSpanned is the window length in whole days, rounded up.
func (w TimeWindow) DaysSpanned() int {
	d := w.End.Sub(w.Start)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func parseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

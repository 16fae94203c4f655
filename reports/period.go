package reports

import (
	"fmt"
	"time"
)

// Period names a reporting window relative to now.
type Period string

const (
	PeriodToday      Period = "today"
	PeriodLast7Days  Period = "last_7_days"
	PeriodLast30Days Period = "last_30_days"
	PeriodLast90Days Period = "last_90_days"
	PeriodThisYear   Period = "this_year"
	PeriodAll        Period = "all"
)

// ParsePeriod accepts an empty string as PeriodAll.
func ParsePeriod(raw string) (Period, error) {
	switch p := Period(raw); p {
	case "":
		return PeriodAll, nil
	case PeriodToday, PeriodLast7Days, PeriodLast30Days, PeriodLast90Days, PeriodThisYear, PeriodAll:
		return p, nil
	}
	return "", fmt.Errorf("unknown period %q", raw)
}

// Window resolves p to [from, to). ok is false for PeriodAll, meaning no bound.
func (p Period) Window(now time.Time) (from, to time.Time, ok bool) {
	y, m, dd := now.Date()
	today := time.Date(y, m, dd, 0, 0, 0, 0, now.Location())
	to = today.AddDate(0, 0, 1)
	switch p {
	case PeriodToday:
		return today, to, true
	case PeriodLast7Days:
		return today.AddDate(0, 0, -6), to, true
	case PeriodLast30Days:
		return today.AddDate(0, 0, -29), to, true
	case PeriodLast90Days:
		return today.AddDate(0, 0, -89), to, true
	case PeriodThisYear:
		return time.Date(today.Year(), 1, 1, 0, 0, 0, 0, now.Location()), to, true
	}
	return time.Time{}, time.Time{}, false
}

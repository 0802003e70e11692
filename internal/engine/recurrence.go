package engine

import (
	"fmt"
	"time"

	"github.com/ledgerline/forecast/internal/models"
)

// monthInterval returns the spacing in months between occurrences. One-time
// obligations share the 12 month interval: inside a one-year window they
// yield at most one occurrence, and their valid-until is expected to pin the
// single due date.
func monthInterval(f models.Frequency) (int, error) {
	switch f {
	case models.FrequencyMonthly:
		return 1, nil
	case models.FrequencyQuarterly:
		return 3, nil
	case models.FrequencySemiannual:
		return 6, nil
	case models.FrequencyAnnual, models.FrequencyOneTime:
		return 12, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFrequency, f)
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func monthsBetween(fromYear int, fromMonth time.Month, toYear int, toMonth time.Month) int {
	return (toYear-fromYear)*12 + int(toMonth-fromMonth)
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// occurrenceDay clamps the anchor day to the last valid day of the month
// (day 31 in February becomes the 28th or 29th).
func occurrenceDay(o models.RecurringObligation, year int, month time.Month) int {
	day := o.AnchorDay
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return day
}

// occurrenceInMonth reports whether the obligation occurs in the given month
// and on which date. The same predicate drives both Expand and the monthly
// gap aggregation, so the frequency rules are defined exactly once.
func occurrenceInMonth(o models.RecurringObligation, year int, month time.Month) (time.Time, bool, error) {
	interval, err := monthInterval(o.Frequency)
	if err != nil {
		return time.Time{}, false, err
	}
	validFrom := dateOnly(o.ValidFrom)
	offset := monthsBetween(validFrom.Year(), validFrom.Month(), year, month)
	if offset < 0 || offset%interval != 0 {
		return time.Time{}, false, nil
	}
	date := time.Date(year, month, occurrenceDay(o, year, month), 0, 0, 0, 0, time.UTC)
	if date.Before(validFrom) {
		return time.Time{}, false, nil
	}
	if o.ValidUntil != nil && date.After(dateOnly(*o.ValidUntil)) {
		return time.Time{}, false, nil
	}
	return date, true, nil
}

// Expand produces the concrete occurrence dates of a recurring obligation
// inside the query window, in ascending order. A validity interval that ends
// before it starts yields an empty result; a reversed query window is a
// caller bug and an error.
func Expand(o models.RecurringObligation, windowStart, windowEnd time.Time) ([]time.Time, error) {
	windowStart, windowEnd = dateOnly(windowStart), dateOnly(windowEnd)
	if windowEnd.Before(windowStart) {
		return nil, fmt.Errorf("%w: window ends %s before it starts %s",
			ErrInvalidDateRange, windowEnd.Format("2006-01-02"), windowStart.Format("2006-01-02"))
	}
	if _, err := monthInterval(o.Frequency); err != nil {
		return nil, err
	}

	start := dateOnly(o.ValidFrom)
	if windowStart.After(start) {
		start = windowStart
	}
	end := windowEnd
	if o.ValidUntil != nil && dateOnly(*o.ValidUntil).Before(end) {
		end = dateOnly(*o.ValidUntil)
	}
	if end.Before(start) {
		return nil, nil
	}

	var dates []time.Time
	year, month := start.Year(), start.Month()
	for monthsBetween(year, month, end.Year(), end.Month()) >= 0 {
		date, ok, err := occurrenceInMonth(o, year, month)
		if err != nil {
			return nil, err
		}
		if ok && !date.Before(windowStart) && !date.After(windowEnd) {
			dates = append(dates, date)
		}
		year, month = nextMonth(year, month)
	}
	return dates, nil
}

package access

import (
	"time"

	apperrors "sales-crm-backend/internal/errors"
)

const dateLayout = "2006-01-02"
const monthLayout = "2006-01"

// TimeRange is an inclusive window used to filter records by timestamp.
// It is a pure filter layered on top of scope and never affects authorization.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether the range is unset
func (t TimeRange) IsZero() bool {
	return t.Start.IsZero() && t.End.IsZero()
}

// Contains reports whether ts falls inside the window
func (t TimeRange) Contains(ts time.Time) bool {
	return !ts.Before(t.Start) && !ts.After(t.End)
}

// DayRange covers one calendar day from 00:00:00.000 to 23:59:59.999
func DayRange(day time.Time) TimeRange {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return TimeRange{Start: start, End: end}
}

// MonthRange covers one calendar month given as "YYYY-MM"
func MonthRange(month string) (TimeRange, error) {
	start, err := time.Parse(monthLayout, month)
	if err != nil {
		return TimeRange{}, apperrors.ErrInvalidMonthFormat
	}
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return TimeRange{Start: start, End: end}, nil
}

// ParseRange builds a window from query parameters: a single date, or an
// explicit start/end pair. Returns nil when no parameters are supplied.
func ParseRange(date, startDate, endDate string) (*TimeRange, error) {
	if date != "" {
		day, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, apperrors.NewValidationError("date", "must be in YYYY-MM-DD format")
		}
		r := DayRange(day)
		return &r, nil
	}

	if startDate == "" && endDate == "" {
		return nil, nil
	}
	if startDate == "" || endDate == "" {
		return nil, apperrors.ErrInvalidTimeRange
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startDate", "must be in YYYY-MM-DD format")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, apperrors.NewValidationError("endDate", "must be in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	return &TimeRange{Start: start, End: DayRange(end).End}, nil
}

// Today covers the current calendar day
func Today() TimeRange {
	return DayRange(time.Now())
}

// ThisMonth covers the current calendar month
func ThisMonth() TimeRange {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return TimeRange{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Millisecond)}
}

// LastMonth covers the previous calendar month
func LastMonth() TimeRange {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	return TimeRange{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Millisecond)}
}

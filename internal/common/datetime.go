package common

import "time"

const (
	DateFormatYYYYMMDD         = "2006-01-02"
	DateFormatYYYYMMDDWithTime = "2006-01-02 15:04:05"
)

func Now() time.Time {
	return time.Now().UTC()
}

// ParseDate parses an ISO yyyy-mm-dd date. Times are normalized to UTC
// midnight so day-delta arithmetic never crosses a timezone boundary.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateFormatYYYYMMDD, value)
	if err != nil {
		return time.Time{}, ErrInvalidFormatDate
	}
	return t.UTC(), nil
}

// DaysBetween returns the absolute difference between two instants in
// whole days, fractional days truncated.
func DaysBetween(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}

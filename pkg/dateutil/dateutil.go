package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used in scenario files.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// RetirementYear returns the calendar year reached after yearsToRetirement years
// from date. Negative spans are treated as already retired.
func RetirementYear(date time.Time, yearsToRetirement int) int {
	if yearsToRetirement < 0 {
		yearsToRetirement = 0
	}
	return AddYears(date, yearsToRetirement).Year()
}

// Package almanac loads the per-day sun table that drives the visualization.
package almanac

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// NoDay marks an absent day index
const NoDay = -1

// DayRecord is one calendar day of the table, times are minutes past midnight
type DayRecord struct {
	Date      time.Time
	Rise      int
	Transit   int
	Set       int
	DayLength int
	DayOfYear int

	// Source text, kept verbatim for the detail readout
	RiseText    string
	TransitText string
	SetText     string
}

// ParseMinutes converts an "HH:MM" time of day into minutes past midnight
// Seconds, am/pm suffixes and bare hours are rejected
func ParseMinutes(val string) (int, error) {
	val = strings.TrimSpace(val)
	hh, mm, ok := strings.Cut(val, ":")
	if !ok || !isClockField(hh) || !isClockField(mm) {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", val)
	}
	var tod datetime.TimeOfDay
	if err := tod.Parse(val); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", val, err)
	}
	return tod.Hour()*60 + tod.Minute(), nil
}

// isClockField reports whether s is one or two ASCII digits
func isClockField(s string) bool {
	if len(s) == 0 || len(s) > 2 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// newDayRecord builds a record from the raw date and time fields
func newDayRecord(date, rise, transit, set string) (DayRecord, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(date))
	if err != nil {
		return DayRecord{}, fmt.Errorf("date %q: %w", date, err)
	}
	riseMin, err := ParseMinutes(rise)
	if err != nil {
		return DayRecord{}, fmt.Errorf("rise: %w", err)
	}
	transitMin, err := ParseMinutes(transit)
	if err != nil {
		return DayRecord{}, fmt.Errorf("transit: %w", err)
	}
	setMin, err := ParseMinutes(set)
	if err != nil {
		return DayRecord{}, fmt.Errorf("set: %w", err)
	}
	if setMin <= riseMin {
		return DayRecord{}, fmt.Errorf("set %s is not after rise %s", strings.TrimSpace(set), strings.TrimSpace(rise))
	}

	return DayRecord{
		Date:        d,
		Rise:        riseMin,
		Transit:     transitMin,
		Set:         setMin,
		DayLength:   setMin - riseMin,
		DayOfYear:   dayOfYear(d),
		RiseText:    strings.TrimSpace(rise),
		TransitText: strings.TrimSpace(transit),
		SetText:     strings.TrimSpace(set),
	}, nil
}

// dayOfYear returns the 1-based ordinal of d within its year
func dayOfYear(d time.Time) int {
	date := datetime.NewDate(datetime.Month(d.Month()), d.Day())
	return date.DayOfYear(d.Year())
}

// Readout formats the one-line detail text for the record
func (r DayRecord) Readout() string {
	return fmt.Sprintf("date: %s | sun rise: %s | sun tran: %s | sun set: %s",
		r.Date.Format(time.DateOnly), r.RiseText, r.TransitText, r.SetText)
}

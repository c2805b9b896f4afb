package almanac

import (
	"fmt"
	"math"
	"time"
)

// SyntheticYear builds a plausible mid-latitude table covering every day of year
// Day length swings between 9 and 15 hours around a fixed 12:00 transit
// Intended for tests and demos that need a table without a file
func SyntheticYear(year int) *Table {
	var days []DayRecord
	for d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() == year; d = d.AddDate(0, 0, 1) {
		swing := 180 * math.Sin(2*math.Pi*float64(d.YearDay()-80)/365)
		length := 720 + int(math.Round(swing))
		transit := 720
		rise := transit - length/2
		set := rise + length

		rec, err := newDayRecord(d.Format(time.DateOnly), clockText(rise), clockText(transit), clockText(set))
		if err != nil {
			panic(fmt.Sprintf("synthetic day %s: %v", d.Format(time.DateOnly), err))
		}
		days = append(days, rec)
	}
	t, err := NewTable(days)
	if err != nil {
		panic(err)
	}
	return t
}

func clockText(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

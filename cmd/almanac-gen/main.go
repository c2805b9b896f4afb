// Command almanac-gen writes a sunrise, transit and sunset table for one location and year
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

const timeLayout = "15:04"

var header = []string{"YYYY-MM-DD", "RISE", "TRAN.", "SET"}

// day holds the local event times of one calendar date
type day struct {
	date    time.Time
	rise    time.Time
	transit time.Time
	set     time.Time
}

func main() {
	lat := flag.Float64("lat", 39.9, "Latitude in degrees, north positive")
	lon := flag.Float64("lon", 116.4, "Longitude in degrees, east positive")
	year := flag.Int("year", time.Now().Year(), "Calendar year")
	tz := flag.String("tz", "Local", "IANA time zone for the printed times")
	flag.Parse()

	if err := run(os.Stdout, *lat, *lon, *year, *tz); err != nil {
		fmt.Fprintf(os.Stderr, "almanac-gen: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, lat, lon float64, year int, tz string) error {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("time zone: %w", err)
	}
	days, err := generate(lat, lon, year, loc)
	if err != nil {
		return err
	}
	return write(w, days)
}

// generate computes every day of year at lat, lon with times in loc
// Transit is the midpoint of rise and set
func generate(lat, lon float64, year int, loc *time.Location) ([]day, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("coordinates out of range: %g, %g", lat, lon)
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	var days []day
	for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
		rise, set := sunrise.SunriseSunset(lat, lon, d.Year(), d.Month(), d.Day())
		if rise.IsZero() || set.IsZero() {
			return nil, fmt.Errorf("%s: no sunrise or sunset at this latitude", d.Format(time.DateOnly))
		}
		rise, set = rise.In(loc), set.In(loc)
		if !sameDate(rise, d) || !sameDate(set, d) || !set.After(rise) {
			return nil, fmt.Errorf("%s: sun events cross local midnight (rise %s, set %s)",
				d.Format(time.DateOnly), rise.Format(time.DateTime), set.Format(time.DateTime))
		}
		days = append(days, day{
			date:    d,
			rise:    rise,
			transit: rise.Add(set.Sub(rise) / 2),
			set:     set,
		})
	}
	return days, nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// write emits days as CSV with a header row
func write(w io.Writer, days []day) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, d := range days {
		rec := []string{
			d.date.Format(time.DateOnly),
			d.rise.Format(timeLayout),
			d.transit.Format(timeLayout),
			d.set.Format(timeLayout),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package almanac

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	cerrors "cloudeng.io/errors"
)

// ErrEmptyTable is returned when a table holds no data rows
var ErrEmptyTable = errors.New("table has no data rows")

// tableColumns is the fixed column count: date, rise, transit, set
const tableColumns = 4

// MonthTick marks the first table index of a calendar month
type MonthTick struct {
	Index int
	Label string
}

// Table is the immutable, date-ordered list of day records
type Table struct {
	days  []DayRecord
	ticks []MonthTick
}

// NewTable orders the records by date and indexes month starts
func NewTable(days []DayRecord) (*Table, error) {
	if len(days) == 0 {
		return nil, ErrEmptyTable
	}
	sorted := slices.Clone(days)
	slices.SortStableFunc(sorted, func(a, b DayRecord) int {
		return a.Date.Compare(b.Date)
	})
	return &Table{days: sorted, ticks: monthTicks(sorted)}, nil
}

// Load parses a CSV table, skipping the header row
// Every malformed row is reported, prefixed with its line number
func Load(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = tableColumns
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var (
		days []DayRecord
		errs cerrors.M
	)
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			errs.Append(err)
			if errors.Is(err, csv.ErrFieldCount) {
				continue
			}
			// Structural CSV damage, the rest of the stream is unreliable
			break
		}
		line, _ := cr.FieldPos(0)
		rec, err := newDayRecord(fields[0], fields[1], fields[2], fields[3])
		if err != nil {
			errs.Append(fmt.Errorf("line %d: %w", line, err))
			continue
		}
		days = append(days, rec)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return NewTable(days)
}

// LoadFile opens and parses the table at path
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Len returns the number of days
func (t *Table) Len() int {
	return len(t.days)
}

// At returns the record at index i, which must be in range
func (t *Table) At(i int) DayRecord {
	return t.days[i]
}

// Wrap maps any integer onto a valid index, modulo the table length
func (t *Table) Wrap(i int) int {
	return WrapIndex(i, len(t.days))
}

// MonthTicks returns the first index of each month in table order
func (t *Table) MonthTicks() []MonthTick {
	return t.ticks
}

func monthTicks(days []DayRecord) []MonthTick {
	ticks := []MonthTick{{Index: 0, Label: days[0].Date.Format("Jan")}}
	for i := 1; i < len(days); i++ {
		prev, cur := days[i-1].Date, days[i].Date
		if cur.Month() != prev.Month() || cur.Year() != prev.Year() {
			ticks = append(ticks, MonthTick{Index: i, Label: cur.Format("Jan")})
		}
	}
	return ticks
}

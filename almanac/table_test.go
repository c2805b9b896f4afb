package almanac

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `YYYY-MM-DD,RISE,TRAN.,SET
2024-01-01,07:36,12:13,16:50
2024-01-02,07:36,12:13,16:51
2024-01-03,07:36,12:14,16:52
`

func TestLoad_ParsesRows(t *testing.T) {
	tbl, err := Load(strings.NewReader(sampleTable))
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	first := tbl.At(0)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 7*60+36, first.Rise)
	assert.Equal(t, 12*60+13, first.Transit)
	assert.Equal(t, 16*60+50, first.Set)
	assert.Equal(t, first.Set-first.Rise, first.DayLength)
	assert.Equal(t, 1, first.DayOfYear)

	assert.Equal(t, 3, tbl.At(2).DayOfYear)
	assert.Equal(t, "date: 2024-01-03 | sun rise: 07:36 | sun tran: 12:14 | sun set: 16:52", tbl.At(2).Readout())
}

func TestLoad_SortsByDate(t *testing.T) {
	in := `date,rise,transit,set
2024-03-02,06:40,12:20,18:00
2024-03-01,06:42,12:20,17:58
`
	tbl, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.At(0).Date.Day())
	assert.Equal(t, 2, tbl.At(1).Date.Day())
	assert.Equal(t, 61, tbl.At(0).DayOfYear)
}

func TestLoad_ToleratesSpacing(t *testing.T) {
	in := "date,rise,transit,set\n2024-06-01, 04:46, 12:04, 19:22\n"
	tbl, err := Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4*60+46, tbl.At(0).Rise)
	assert.Equal(t, "04:46", tbl.At(0).RiseText)
}

func TestLoad_ReportsEveryBadRow(t *testing.T) {
	in := `date,rise,transit,set
2024-01-01,07:36,12:13,16:50
2024-01-02,xx:36,12:13,16:51
2024-01-03,07:36,12:14
2024-13-04,07:36,12:14,16:52
2024-01-05,17:36,12:14,16:52
`
	_, err := Load(strings.NewReader(in))
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "line 3")
	assert.Contains(t, msg, "wrong number of fields")
	assert.Contains(t, msg, "line 5")
	assert.Contains(t, msg, "line 6")
	assert.Contains(t, msg, "not after rise")
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = Load(strings.NewReader("date,rise,transit,set\n"))
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sun.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	tbl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:05", 425, false},
		{"23:59", 1439, false},
		{" 12:30 ", 750, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
		{"7:5", 425, false},
		{"7am", 0, true},
		{"4pm", 0, true},
		{"07:05pm", 0, true},
		{"7", 0, true},
		{"07:36:59", 0, true},
		{"007:00", 0, true},
		{"-1:30", 0, true},
		{"xx", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMinutes(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMinutes_ErrorNamesFormat(t *testing.T) {
	_, err := ParseMinutes("xx")
	require.Error(t, err)
	assert.Equal(t, `invalid time "xx", expected HH:MM`, err.Error())
}

func TestLoad_RejectsLooseTimes(t *testing.T) {
	input := `YYYY-MM-DD,RISE,TRAN.,SET
2024-01-01,7am,12:00,4pm
2024-01-02,07:36:59,12:04,16:59
2024-01-03,07:36,12:04,16:59
`
	_, err := Load(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2: rise")
	assert.Contains(t, err.Error(), `"7am"`)
	assert.Contains(t, err.Error(), "line 3: rise")
	assert.Contains(t, err.Error(), `"07:36:59"`)
	assert.NotContains(t, err.Error(), "line 4")
}

func TestWrap(t *testing.T) {
	tbl, err := Load(strings.NewReader(sampleTable))
	require.NoError(t, err)

	for i := -10; i <= 10; i++ {
		w := tbl.Wrap(i)
		assert.GreaterOrEqual(t, w, 0)
		assert.Less(t, w, tbl.Len())
	}
	assert.Equal(t, 2, tbl.Wrap(-1))
	assert.Equal(t, 0, tbl.Wrap(3))
	assert.Equal(t, 1, tbl.Wrap(7))
}

func TestIndexHelpers(t *testing.T) {
	tests := []struct {
		i, n        int
		wrap, clamp int
	}{
		{0, 3, 0, 0},
		{2, 3, 2, 2},
		{3, 3, 0, 2},
		{-1, 3, 2, 0},
		{-4, 3, 2, 0},
		{99, 366, 99, 99},
		{366, 366, 0, 365},
		{5, 1, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wrap, WrapIndex(tt.i, tt.n), "WrapIndex(%d, %d)", tt.i, tt.n)
		assert.Equal(t, tt.clamp, ClampIndex(tt.i, tt.n), "ClampIndex(%d, %d)", tt.i, tt.n)
	}
}

func TestSyntheticYear(t *testing.T) {
	leap := SyntheticYear(2024)
	assert.Equal(t, 366, leap.Len())
	assert.Equal(t, 366, leap.At(365).DayOfYear)

	common := SyntheticYear(2023)
	assert.Equal(t, 365, common.Len())

	for i := 0; i < leap.Len(); i++ {
		d := leap.At(i)
		require.Less(t, d.Rise, d.Set, "day %d", i)
	}
}

func TestMonthTicks(t *testing.T) {
	ticks := SyntheticYear(2024).MonthTicks()
	require.Len(t, ticks, 12)

	wantIdx := []int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
	wantLabel := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	for i, tick := range ticks {
		assert.Equal(t, wantIdx[i], tick.Index)
		assert.Equal(t, wantLabel[i], tick.Label)
	}
}

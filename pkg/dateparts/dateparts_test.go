package dateparts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nubz/gds-validation/pkg/dateparts"
)

func lookupFrom(m map[string]string) dateparts.Lookup {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid date", func(t *testing.T) {
		t.Parallel()
		got, err := dateparts.Parse("2020-02-29")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC), got)
	})

	invalid := []string{"", "2021-02-29", "2020-13-01", "2020-1-1", "20-01-01", "2020/01/01", "2020-01-01T00:00:00Z"}
	for _, value := range invalid {
		t.Run("rejects "+value, func(t *testing.T) {
			t.Parallel()
			_, err := dateparts.Parse(value)
			assert.ErrorIs(t, err, dateparts.ErrInvalidDate)
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2 February 2020", dateparts.Format("2020-02-02"))
	assert.Equal(t, "not a date", dateparts.Format("not a date"))
}

func TestDay(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, time.June, 3, 17, 45, 12, 99, time.UTC)
	assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), dateparts.Day(in))
}

func TestCollect(t *testing.T) {
	t.Parallel()

	parts := dateparts.Collect("dob", lookupFrom(map[string]string{
		"dob-day":   "3",
		"dob-month": " 4 ",
		"dob-year":  "1999",
	}))
	assert.Equal(t, dateparts.Parts{Day: "03", Month: "04", Year: "1999"}, parts)
	assert.True(t, parts.Complete())
	assert.Equal(t, "1999-04-03", parts.ISO())
	assert.Equal(t, dateparts.Completeness(0), parts.Classify())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parts   dateparts.Parts
		key     string
		missing []dateparts.Part
	}{
		{"nothing", dateparts.Parts{}, "required", dateparts.AllParts},
		{"no day", dateparts.Parts{Month: "01", Year: "2000"}, "dayRequired", []dateparts.Part{dateparts.PartDay}},
		{"no month", dateparts.Parts{Day: "01", Year: "2000"}, "monthRequired", []dateparts.Part{dateparts.PartMonth}},
		{"no year", dateparts.Parts{Day: "01", Month: "01"}, "yearRequired", []dateparts.Part{dateparts.PartYear}},
		{"day and month", dateparts.Parts{Year: "2000"}, "dayAndMonthRequired", []dateparts.Part{dateparts.PartDay, dateparts.PartMonth}},
		{"day and year", dateparts.Parts{Month: "01"}, "dayAndYearRequired", []dateparts.Part{dateparts.PartDay, dateparts.PartYear}},
		{"month and year", dateparts.Parts{Day: "01"}, "monthAndYearRequired", []dateparts.Part{dateparts.PartMonth, dateparts.PartYear}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := tt.parts.Classify()
			assert.Equal(t, tt.key, c.Key())
			assert.Equal(t, tt.missing, c.MissingParts())

			back, ok := dateparts.FromKey(tt.key)
			require.True(t, ok)
			assert.Equal(t, c, back)
		})
	}

	t.Run("complete has no key", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, dateparts.Completeness(0).Key())
		_, ok := dateparts.FromKey("date")
		assert.False(t, ok)
	})
}

func TestInputID(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "dob-month", dateparts.PartMonth.InputID("dob"))
}

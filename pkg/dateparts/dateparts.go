// Package dateparts composes GOV.UK style day, month and year inputs into ISO
// dates and classifies partially completed answers.
package dateparts

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/nubz/gds-validation/pkg/sanitizer"
)

const (
	// ISOLayout is the canonical form of a composed date.
	ISOLayout = "2006-01-02"
	// DisplayLayout renders dates in error messages, e.g. "2 January 2006".
	DisplayLayout = "2 January 2006"
)

// Part suffixes appended to a field key to name its inputs.
const (
	DaySuffix   = "-day"
	MonthSuffix = "-month"
	YearSuffix  = "-year"
)

// Part names a single date input.
type Part string

const (
	PartDay   Part = "day"
	PartMonth Part = "month"
	PartYear  Part = "year"
)

// AllParts lists the date inputs in display order.
var AllParts = []Part{PartDay, PartMonth, PartYear}

// InputID returns the element id of part p for the field key.
func (p Part) InputID(key string) string {
	return key + "-" + string(p)
}

var ErrInvalidDate = errors.New("dateparts: invalid date")

var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Parse accepts only YYYY-MM-DD strings naming a real calendar day.
func Parse(value string) (time.Time, error) {
	if !isoPattern.MatchString(value) {
		return time.Time{}, ErrInvalidDate
	}
	t, err := time.Parse(ISOLayout, value)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidDate, err)
	}
	return t, nil
}

// Format renders an ISO date in DisplayLayout. Unparseable input is returned as is.
func Format(value string) string {
	t, err := Parse(value)
	if err != nil {
		return value
	}
	return t.Format(DisplayLayout)
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Parts holds the raw day, month and year answers for one date field.
type Parts struct {
	Day   string
	Month string
	Year  string
}

// Lookup reads a single submitted value by input name.
type Lookup func(name string) (string, bool)

// Collect gathers the three inputs for key, trimming and zero padding day and month.
func Collect(key string, lookup Lookup) Parts {
	get := func(suffix string) string {
		v, _ := lookup(key + suffix)
		return strings.TrimSpace(v)
	}
	return Parts{
		Day:   sanitizer.ZeroPad(get(DaySuffix)),
		Month: sanitizer.ZeroPad(get(MonthSuffix)),
		Year:  get(YearSuffix),
	}
}

// Complete reports whether all three parts were given.
func (p Parts) Complete() bool {
	return p.Day != "" && p.Month != "" && p.Year != ""
}

// Empty reports whether no part was given.
func (p Parts) Empty() bool {
	return p.Day == "" && p.Month == "" && p.Year == ""
}

// ISO joins the parts as YYYY-MM-DD without checking them.
func (p Parts) ISO() string {
	return p.Year + "-" + p.Month + "-" + p.Day
}

// Classify returns which parts are missing.
func (p Parts) Classify() Completeness {
	var c Completeness
	if p.Day == "" {
		c |= MissingDay
	}
	if p.Month == "" {
		c |= MissingMonth
	}
	if p.Year == "" {
		c |= MissingYear
	}
	return c
}

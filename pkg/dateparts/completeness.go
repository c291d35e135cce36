package dateparts

// Completeness is a bit set of missing date parts. The zero value means the
// date was fully entered.
type Completeness uint8

const (
	MissingDay Completeness = 1 << iota
	MissingMonth
	MissingYear

	MissingAll = MissingDay | MissingMonth | MissingYear
)

var completenessKeys = map[Completeness]string{
	MissingAll:                 "required",
	MissingDay:                 "dayRequired",
	MissingMonth:               "monthRequired",
	MissingYear:                "yearRequired",
	MissingDay | MissingMonth:  "dayAndMonthRequired",
	MissingDay | MissingYear:   "dayAndYearRequired",
	MissingMonth | MissingYear: "monthAndYearRequired",
}

// Key returns the error key for an incomplete date, or "" when nothing is missing.
func (c Completeness) Key() string {
	return completenessKeys[c]
}

// MissingParts lists the absent parts in display order.
func (c Completeness) MissingParts() []Part {
	parts := make([]Part, 0, 3)
	if c&MissingDay != 0 {
		parts = append(parts, PartDay)
	}
	if c&MissingMonth != 0 {
		parts = append(parts, PartMonth)
	}
	if c&MissingYear != 0 {
		parts = append(parts, PartYear)
	}
	return parts
}

// FromKey maps an error key back to the parts it blames. Keys that are not
// completeness keys report false.
func FromKey(key string) (Completeness, bool) {
	for c, k := range completenessKeys {
		if k == key {
			return c, true
		}
	}
	return 0, false
}

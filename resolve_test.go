package gdsvalidation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	gdsvalidation "github.com/nubz/gds-validation"
)

func TestResolve(t *testing.T) {
	t.Run("literal numbers", func(t *testing.T) {
		rf := gdsvalidation.Resolve(nil, gdsvalidation.Field{
			Type: gdsvalidation.Number,
			Min:  gdsvalidation.Literal(10),
			Max:  gdsvalidation.Literal("1,000"),
		})
		assert.Equal(t, gdsvalidation.BoundValue{Set: true, Number: 10}, rf.MinValue)
		assert.Equal(t, gdsvalidation.BoundValue{Set: true, Number: 1000}, rf.MaxValue)
	})

	t.Run("field reference to a currency answer", func(t *testing.T) {
		payload := gdsvalidation.Payload{"income": "£1,250.50"}
		rf := gdsvalidation.Resolve(payload, gdsvalidation.Field{Type: gdsvalidation.Currency, Max: gdsvalidation.FieldRef("income")})
		assert.True(t, rf.MaxValue.Set)
		assert.InDelta(t, 1250.5, rf.MaxValue.Number, 0.0001)
		assert.False(t, rf.MaxValue.Derived)
		assert.Equal(t, "£1,250.50", payload["income"], "the payload is not modified")
	})

	t.Run("unanswered reference is unset", func(t *testing.T) {
		rf := gdsvalidation.Resolve(gdsvalidation.Payload{"limit": "lots"}, gdsvalidation.Field{
			Type: gdsvalidation.Number,
			Min:  gdsvalidation.FieldRef("missing"),
			Max:  gdsvalidation.FieldRef("limit"),
		})
		assert.False(t, rf.MinValue.Set)
		assert.False(t, rf.MaxValue.Set)
	})

	t.Run("date reference composed from parts", func(t *testing.T) {
		payload := gdsvalidation.Payload{"start-day": "2", "start-month": "3", "start-year": "2021"}
		rf := gdsvalidation.Resolve(payload, gdsvalidation.Field{Type: gdsvalidation.Date, Min: gdsvalidation.FieldRef("start")})
		assert.True(t, rf.MinValue.Set)
		assert.Equal(t, "2021-03-02", rf.MinValue.ISO())
		assert.NotContains(t, payload, "start")
	})

	t.Run("computed date is truncated to the day", func(t *testing.T) {
		rf := gdsvalidation.Resolve(nil, gdsvalidation.Field{
			Type: gdsvalidation.Date,
			Max: gdsvalidation.Computed(func(gdsvalidation.Payload) any {
				return time.Date(2024, 5, 6, 18, 45, 0, 0, time.UTC)
			}),
		})
		assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), rf.MaxValue.Date)
	})

	t.Run("derived bounds replace min and max", func(t *testing.T) {
		rf := gdsvalidation.Resolve(gdsvalidation.Payload{"start": "2020-01-01"}, gdsvalidation.Field{
			Type:          gdsvalidation.Date,
			Min:           gdsvalidation.Literal("1999-01-01"),
			AfterDateFrom: gdsvalidation.FieldRef("start"),
		})
		assert.True(t, rf.MinValue.Derived)
		assert.Equal(t, "2020-01-01", rf.MinValue.ISO())

		rf = gdsvalidation.Resolve(gdsvalidation.Payload{}, gdsvalidation.Field{
			Type:            gdsvalidation.Currency,
			MaxCurrencyFrom: gdsvalidation.FieldRef("income"),
		})
		assert.False(t, rf.MaxValue.Set)
		assert.False(t, rf.MaxValue.Derived)
	})

	t.Run("types without bounds ignore them", func(t *testing.T) {
		rf := gdsvalidation.Resolve(nil, gdsvalidation.Field{Type: gdsvalidation.NonEmptyString, Min: gdsvalidation.Literal(3)})
		assert.False(t, rf.MinValue.Set)
	})

	t.Run("unknown type is normalised", func(t *testing.T) {
		rf := gdsvalidation.Resolve(nil, gdsvalidation.Field{Type: "postcode"})
		assert.Equal(t, gdsvalidation.NonEmptyString, rf.Type)
	})
}

func TestBoundString(t *testing.T) {
	assert.Equal(t, "literal(10)", gdsvalidation.Literal(10).String())
	assert.Equal(t, "field(limit)", gdsvalidation.FieldRef("limit").String())
	assert.Equal(t, "computed", gdsvalidation.Computed(nil).String())

	ref, ok := gdsvalidation.FieldRef("limit").Ref()
	assert.True(t, ok)
	assert.Equal(t, "limit", ref)

	_, ok = gdsvalidation.Literal(1).Ref()
	assert.False(t, ok)
}

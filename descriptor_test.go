package gdsvalidation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gdsvalidation "github.com/nubz/gds-validation"
	"github.com/nubz/gds-validation/pkg/dateparts"
)

func TestDateErrorLink(t *testing.T) {
	tests := []struct {
		key    gdsvalidation.ErrorKey
		anchor dateparts.Part
		inputs []dateparts.Part
	}{
		{gdsvalidation.KeyRequired, dateparts.PartDay, dateparts.AllParts},
		{gdsvalidation.KeyDayRequired, dateparts.PartDay, []dateparts.Part{dateparts.PartDay}},
		{gdsvalidation.KeyMonthRequired, dateparts.PartMonth, []dateparts.Part{dateparts.PartMonth}},
		{gdsvalidation.KeyYearRequired, dateparts.PartYear, []dateparts.Part{dateparts.PartYear}},
		{gdsvalidation.KeyDayAndMonthRequired, dateparts.PartDay, []dateparts.Part{dateparts.PartDay, dateparts.PartMonth}},
		{gdsvalidation.KeyDayAndYearRequired, dateparts.PartDay, []dateparts.Part{dateparts.PartDay, dateparts.PartYear}},
		{gdsvalidation.KeyMonthAndYearRequired, dateparts.PartMonth, []dateparts.Part{dateparts.PartMonth, dateparts.PartYear}},
		{gdsvalidation.KeyDate, dateparts.PartDay, dateparts.AllParts},
		{gdsvalidation.KeyBeforeToday, dateparts.PartDay, dateparts.AllParts},
		{gdsvalidation.KeyAfterDate, dateparts.PartDay, dateparts.AllParts},
		{gdsvalidation.KeyBetweenMinAndMaxDates, dateparts.PartDay, dateparts.AllParts},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			link, err := gdsvalidation.DateErrorLink(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.anchor, link.Anchor)
			assert.Equal(t, tt.inputs, link.Inputs)
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		_, err := gdsvalidation.DateErrorLink(gdsvalidation.KeyCurrencyMax)
		assert.ErrorIs(t, err, gdsvalidation.ErrUnknownDateErrorKey)

		_, err = gdsvalidation.DateErrorLink("madeUp")
		assert.ErrorIs(t, err, gdsvalidation.ErrUnknownDateErrorKey)
	})
}

func TestBuildHref(t *testing.T) {
	t.Run("plain field", func(t *testing.T) {
		href, err := gdsvalidation.BuildHref(gdsvalidation.Field{Key: "amount", Type: gdsvalidation.Currency}, gdsvalidation.KeyCurrencyMax)
		require.NoError(t, err)
		assert.Equal(t, "#amount", href)
	})

	t.Run("enum links to first option", func(t *testing.T) {
		f := gdsvalidation.Field{Key: "colour", Type: gdsvalidation.Enum, ValidValues: []string{"Dark Blue", "red"}}
		href, err := gdsvalidation.BuildHref(f, gdsvalidation.KeyEnum)
		require.NoError(t, err)
		assert.Equal(t, "#colour-dark-blue", href)

		f.ValidValues = nil
		href, err = gdsvalidation.BuildHref(f, gdsvalidation.KeyEnum)
		require.NoError(t, err)
		assert.Equal(t, "#colour", href)
	})

	t.Run("date part", func(t *testing.T) {
		f := gdsvalidation.Field{Key: "dob", Type: gdsvalidation.Date}
		href, err := gdsvalidation.BuildHref(f, gdsvalidation.KeyMonthAndYearRequired)
		require.NoError(t, err)
		assert.Equal(t, "#dob-month", href)

		_, err = gdsvalidation.BuildHref(f, gdsvalidation.KeyNumberMax)
		assert.ErrorIs(t, err, gdsvalidation.ErrUnknownDateErrorKey)
	})
}

func TestInputsInError(t *testing.T) {
	inputs, err := gdsvalidation.InputsInError(gdsvalidation.Field{Key: "name"}, gdsvalidation.KeyRequired)
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, inputs)

	inputs, err = gdsvalidation.InputsInError(gdsvalidation.Field{Key: "dob", Type: gdsvalidation.Date}, gdsvalidation.KeyDayAndYearRequired)
	require.NoError(t, err)
	assert.Equal(t, []string{"day", "year"}, inputs)

	_, err = gdsvalidation.InputsInError(gdsvalidation.Field{Key: "dob", Type: gdsvalidation.Date}, gdsvalidation.KeyEnum)
	assert.ErrorIs(t, err, gdsvalidation.ErrUnknownDateErrorKey)
}

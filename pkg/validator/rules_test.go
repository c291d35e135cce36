package validator_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nubz/gds-validation/pkg/validator"
)

func passes(r validator.Rule) bool { return r.Check() }

func TestStringRules(t *testing.T) {
	t.Run("required fails only on empty", func(t *testing.T) {
		assert.False(t, passes(validator.Required("f", "")))
		assert.True(t, passes(validator.Required("f", " ")))
		assert.True(t, passes(validator.Required("f", "0")))
	})

	t.Run("exact length ignores spaces", func(t *testing.T) {
		assert.True(t, passes(validator.ExactLen("sortCode", "12 34 56", 6)))
		assert.False(t, passes(validator.ExactLen("sortCode", "12-34-56", 6)))
		assert.True(t, passes(validator.ExactLen("name", "Zoë", 3)))
	})

	t.Run("length bounds are inclusive", func(t *testing.T) {
		assert.True(t, passes(validator.LenBetween("f", 5, 5, 10)))
		assert.True(t, passes(validator.LenBetween("f", 10, 5, 10)))
		assert.False(t, passes(validator.LenBetween("f", 11, 5, 10)))
		assert.True(t, passes(validator.MinLen("f", 5, 5)))
		assert.False(t, passes(validator.MinLen("f", 4, 5)))
		assert.True(t, passes(validator.MaxLen("f", 10, 10)))
		assert.False(t, passes(validator.MaxLen("f", 11, 10)))
	})

	t.Run("length counts runes", func(t *testing.T) {
		assert.Equal(t, 4, validator.Length("café"))
	})
}

func TestNumericRules(t *testing.T) {
	assert.True(t, passes(validator.NumberString("n", "12.5")))
	assert.True(t, passes(validator.NumberString("n", "-3")))
	assert.False(t, passes(validator.NumberString("n", "twelve")))
	assert.False(t, passes(validator.NumberString("n", "")))

	assert.True(t, passes(validator.MinNum("n", 5, 5)))
	assert.False(t, passes(validator.MinNum("n", 4.99, 5)))
	assert.True(t, passes(validator.MaxNum("n", 50, 50)))
	assert.False(t, passes(validator.MaxNum("n", 51, 50)))
	assert.True(t, passes(validator.NumBetween("n", 1, 1, 3)))
	assert.False(t, passes(validator.NumBetween("n", 4, 1, 3)))

	r := validator.NumBetween("n", 4, 1, 3)
	assert.Equal(t, validator.KeyBetweenMinAndMaxNumbers, r.Error.TranslationKey)
	assert.Equal(t, 1, r.Error.TranslationValues["min"])
}

func TestFinancialRules(t *testing.T) {
	valid := []string{"0", "10", "1,000", "1,000.5", "99.99"}
	for _, v := range valid {
		assert.True(t, passes(validator.CurrencyAmount("amount", v)), v)
	}
	invalid := []string{"", "1.999", "-5", "ten", "£10", "10."}
	for _, v := range invalid {
		assert.False(t, passes(validator.CurrencyAmount("amount", v)), v)
	}

	assert.True(t, passes(validator.MaxAmount("amount", 50, 50)))
	assert.Equal(t, validator.KeyCurrencyMax, validator.MaxAmount("amount", 51, 50).Error.TranslationKey)
	assert.Equal(t, validator.KeyCurrencyMin, validator.MinAmount("amount", 1, 5).Error.TranslationKey)
	assert.Equal(t, validator.KeyBetweenCurrency, validator.AmountRange("amount", 1, 5, 10).Error.TranslationKey)
}

func TestDateRules(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			panic(err)
		}
		return d
	}

	t.Run("valid date", func(t *testing.T) {
		assert.True(t, passes(validator.ValidDate("d", "2020-02-29")))
		assert.False(t, passes(validator.ValidDate("d", "2021-02-29")))
		assert.False(t, passes(validator.ValidDate("d", "")))
	})

	t.Run("after and before are strict", func(t *testing.T) {
		assert.True(t, passes(validator.DateAfter("d", day("2020-01-02"), day("2020-01-01"))))
		assert.False(t, passes(validator.DateAfter("d", day("2020-01-01"), day("2020-01-01"))))
		assert.True(t, passes(validator.DateBefore("d", day("2019-12-31"), day("2020-01-01"))))
		assert.False(t, passes(validator.DateBefore("d", day("2020-01-01"), day("2020-01-01"))))
	})

	t.Run("between", func(t *testing.T) {
		start, end := day("2020-02-02"), day("2022-02-02")
		assert.True(t, passes(validator.DateBetween("d", day("2022-01-01"), start, end)))
		assert.False(t, passes(validator.DateBetween("d", day("2022-02-02"), start, end)))
		assert.False(t, passes(validator.DateBetween("d", day("2019-01-01"), start, end)))
	})

	t.Run("today comparisons ignore time of day", func(t *testing.T) {
		now := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

		assert.True(t, passes(validator.BeforeToday("d", day("2024-03-09"), now)))
		assert.False(t, passes(validator.BeforeToday("d", day("2024-03-10"), now)))
		assert.True(t, passes(validator.AfterToday("d", day("2024-03-11"), now)))
		assert.False(t, passes(validator.AfterToday("d", day("2024-03-10"), now)))

		assert.Equal(t, validator.KeyBeforeToday, validator.BeforeToday("d", day("2024-03-10"), now).Error.TranslationKey)
		assert.Equal(t, validator.KeyAfterToday, validator.AfterToday("d", day("2024-03-10"), now).Error.TranslationKey)
	})
}

func TestPatternRules(t *testing.T) {
	ni := regexp.MustCompile(`^[A-Z]{2}[0-9]{6}[A-D]$`)
	assert.True(t, passes(validator.MatchesRegex("ni", "QQ123456C", ni)))
	assert.False(t, passes(validator.MatchesRegex("ni", "QQ123456", ni)))
	assert.True(t, passes(validator.MatchesRegex("ni", "anything", nil)))
}

func TestChoiceRules(t *testing.T) {
	assert.True(t, passes(validator.InList("colour", "red", []string{"red", "blue"})))
	assert.False(t, passes(validator.InList("colour", "green", []string{"red", "blue"})))

	r := validator.MatchesOneOf("code", "B", []string{"A"})
	assert.False(t, passes(r))
	assert.Equal(t, validator.KeyNoMatch, r.Error.TranslationKey)

	assert.True(t, passes(validator.NotOneOf("code", "B", []string{"A"})))
	assert.False(t, passes(validator.NotOneOf("code", "A", []string{"A"})))
}

func TestCollectionRules(t *testing.T) {
	assert.True(t, passes(validator.MinItems("opts", []string{"a"}, 1)))
	assert.False(t, passes(validator.MinItems("opts", []string{}, 1)))

	assert.True(t, passes(validator.EachInList("opts", []string{"a", "b"}, []string{"a", "b", "c"})))
	assert.False(t, passes(validator.EachInList("opts", []string{"a", "z"}, []string{"a", "b"})))
	assert.True(t, passes(validator.EachInList("opts", []string{"z"}, nil)))

	r := validator.RequiredFile("upload", "")
	assert.False(t, passes(r))
	assert.Equal(t, validator.KeyMissingFile, r.Error.TranslationKey)
}

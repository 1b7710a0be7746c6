package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExperienceLevelFromYears(t *testing.T) {
	tests := []struct {
		years    int
		expected ExperienceLevel
	}{
		{-1, EntryLevel},
		{0, EntryLevel},
		{1, Junior},
		{2, Associate},
		{3, Associate},
		{4, Mid},
		{5, Mid},
		{6, Senior},
		{8, Senior},
		{9, StaffPrincipal},
		{12, StaffPrincipal},
		{13, DirectorExecutive},
		{30, DirectorExecutive},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExperienceLevelFromYears(tt.years), "years=%d", tt.years)
	}
}

func TestExperienceLevelLabel(t *testing.T) {
	assert.Equal(t, "Entry level", EntryLevel.Label())
	assert.Equal(t, "Junior", Junior.Label())
	assert.Equal(t, "Associate/Early career", Associate.Label())
	assert.Equal(t, "Mid-level", Mid.Label())
	assert.Equal(t, "Senior", Senior.Label())
	assert.Equal(t, "Staff/Principal/Lead", StaffPrincipal.Label())
	assert.Equal(t, "Director/VP/Executive", DirectorExecutive.Label())
}

func TestNewSalaryRange(t *testing.T) {
	t.Run("Mid is the mean", func(t *testing.T) {
		min, max := 80000.0, 120000.0
		r := NewSalaryRange(&min, &max, "USD", "yearly")
		if assert.NotNil(t, r.Mid) {
			assert.Equal(t, 100000.0, *r.Mid)
		}
	})

	t.Run("Defaults applied", func(t *testing.T) {
		min := 50000.0
		r := NewSalaryRange(&min, nil, "", "")
		assert.Equal(t, "USD", r.Currency)
		assert.Equal(t, "yearly", r.Period)
		assert.Nil(t, r.Mid)
	})
}

func TestCompanyEnriched(t *testing.T) {
	size := "51-200 employees"
	assert.False(t, (&Company{CompanyName: "Acme"}).Enriched())
	assert.True(t, (&Company{CompanyName: "Acme", CompanySize: &size}).Enriched())
}

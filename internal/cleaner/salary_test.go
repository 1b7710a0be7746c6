package cleaner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSalaryPattern(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedMin float64
		expectedMax float64
	}{
		{
			name:        "Dollar range with dash",
			content:     "Competitive salary range: $80,000 - $120,000 annually",
			expectedMin: 80000,
			expectedMax: 120000,
		},
		{
			name:        "Dollar range with to",
			content:     "We pay $95,000.00 to $140,000.00 plus benefits",
			expectedMin: 95000,
			expectedMax: 140000,
		},
		{
			name:        "K suffix range",
			content:     "Salary: 90k - 130k per year",
			expectedMin: 90000,
			expectedMax: 130000,
		},
		{
			name:        "K suffix with to",
			content:     "Offering 85k to 110k annually",
			expectedMin: 85000,
			expectedMax: 110000,
		},
		{
			name:        "Per-year suffix",
			content:     "Pay: $95,000.00/yr - $140,000.00/yr",
			expectedMin: 95000,
			expectedMax: 140000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := extractSalaryPattern(tt.content)
			if assert.NotNil(t, r) {
				assert.Equal(t, tt.expectedMin, *r.Min)
				assert.Equal(t, tt.expectedMax, *r.Max)
				assert.Equal(t, (tt.expectedMin+tt.expectedMax)/2, *r.Mid)
				assert.Equal(t, "USD", r.Currency)
				assert.Equal(t, "yearly", r.Period)
			}
		})
	}

	t.Run("No salary info", func(t *testing.T) {
		assert.Nil(t, extractSalaryPattern("Great opportunity with competitive compensation"))
	})

	t.Run("Thousands untouched when already large", func(t *testing.T) {
		r := extractSalaryPattern("401k plan included, salary $80,000 - $120,000")
		if assert.NotNil(t, r) {
			assert.Equal(t, float64(80000), *r.Min)
		}
	})
}

func TestParseSalaryResponse(t *testing.T) {
	t.Run("Full response", func(t *testing.T) {
		resp := "MIN_SALARY: 80000\nMAX_SALARY: 120000\nCURRENCY: usd\nPERIOD: Yearly"
		r := parseSalaryResponse(resp)
		if assert.NotNil(t, r) {
			assert.Equal(t, float64(80000), *r.Min)
			assert.Equal(t, float64(120000), *r.Max)
			assert.Equal(t, float64(100000), *r.Mid)
			assert.Equal(t, "USD", r.Currency)
			assert.Equal(t, "yearly", r.Period)
		}
	})

	t.Run("Only max given", func(t *testing.T) {
		resp := "MIN_SALARY: null\nMAX_SALARY: $130,000\nCURRENCY: null\nPERIOD: null"
		r := parseSalaryResponse(resp)
		if assert.NotNil(t, r) {
			assert.Nil(t, r.Min)
			assert.Equal(t, float64(130000), *r.Max)
			assert.Nil(t, r.Mid)
			assert.Equal(t, "USD", r.Currency)
			assert.Equal(t, "yearly", r.Period)
		}
	})

	t.Run("All null", func(t *testing.T) {
		resp := "MIN_SALARY: null\nMAX_SALARY: none\nCURRENCY: null\nPERIOD: null"
		assert.Nil(t, parseSalaryResponse(resp))
	})

	t.Run("Unstructured response", func(t *testing.T) {
		assert.Nil(t, parseSalaryResponse("I could not find any salary information."))
	})
}

func TestSalaryChain_Extract(t *testing.T) {
	ctx := context.Background()

	t.Run("Pattern wins without LLM", func(t *testing.T) {
		chain := NewSalaryChain(&stubLLM{err: errors.New("should not be called")})
		r, err := chain.Extract(ctx, "Base pay $100,000 - $150,000")
		assert.NoError(t, err)
		if assert.NotNil(t, r) {
			assert.Equal(t, float64(100000), *r.Min)
		}
	})

	t.Run("LLM fallback", func(t *testing.T) {
		chain := NewSalaryChain(&stubLLM{resp: "MIN_SALARY: 70000\nMAX_SALARY: 90000\nCURRENCY: USD\nPERIOD: yearly"})
		r, err := chain.Extract(ctx, "Competitive compensation package")
		assert.NoError(t, err)
		if assert.NotNil(t, r) {
			assert.Equal(t, float64(70000), *r.Min)
			assert.Equal(t, float64(90000), *r.Max)
		}
	})

	t.Run("LLM error propagates", func(t *testing.T) {
		chain := NewSalaryChain(&stubLLM{err: errors.New("model down")})
		_, err := chain.Extract(ctx, "Competitive compensation package")
		assert.Error(t, err)
	})
}

package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"number", float64(12.5), 12.5},
		{"int", 3, 3},
		{"plain string", "1000", 1000},
		{"decimal string", "7.25", 7.25},
		{"leading spaces", "  42", 42},
		{"numeric prefix", "12abc", 12},
		{"trailing dot", "5.", 5},
		{"leading dot", ".5", 0.5},
		{"signed", "-3.5", -3.5},
		{"exponent", "1e3", 1000},
		{"dangling exponent", "2e", 2},
		{"json number", json.Number("15"), 15},
		{"infinity", "Infinity", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFloat(tt.in))
		})
	}
}

func TestParseFloatNaN(t *testing.T) {
	for _, in := range []any{"", "abc", " ", "-", ".", nil, true, map[string]any{}} {
		assert.True(t, math.IsNaN(ParseFloat(in)), "%v must parse to NaN", in)
	}
}

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "7", NormalizeID("7"))
	assert.Equal(t, "7", NormalizeID(float64(7)))
	assert.Equal(t, "7", NormalizeID(7))
	assert.Equal(t, "7", NormalizeID(json.Number("7")))
	assert.Equal(t, "", NormalizeID(nil))
	assert.True(t, SameID("12", float64(12)))
	assert.False(t, SameID("12", "13"))
}

func TestRecompute(t *testing.T) {
	c := Customer{Principal: 10000, InterestRate: 5, TimePeriod: 3}
	c.Recompute()

	assert.InDelta(t, 1500, c.InterestAmount, 1e-9)
	assert.InDelta(t, 11500, c.TotalAmount, 1e-9)
	assert.Equal(t, c.Principal+c.InterestAmount, c.TotalAmount)
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("0123"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("12a"))
	assert.False(t, IsDigits("-1"))
}

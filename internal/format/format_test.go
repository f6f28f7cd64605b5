package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "$0"},
		{"small", 950, "$950"},
		{"thousands grouped", 1234567, "$1,234,567"},
		{"cents rounded", 1234567.89, "$1,234,568"},
		{"round half up", 10.5, "$11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount))
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0, "0.0%"},
		{"whole", 75, "75.0%"},
		{"rounded to one decimal", 42.376, "42.4%"},
		{"over one hundred", 112.26, "112.3%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.value))
		})
	}
}

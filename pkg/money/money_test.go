package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		expected string
	}{
		{"Zero", 0, "0 ₫"},
		{"Small amount", 500, "500 ₫"},
		{"Thousands grouping", 45000, "45.000 ₫"},
		{"Millions grouping", 1250000, "1.250.000 ₫"},
		{"Negative amount", -5000, "-5.000 ₫"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.amount))
		})
	}
}

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVolume(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "range yields mean", input: "100000-200000", want: 150000},
		{name: "open ended yields minimum", input: "600000+", want: 600000},
		{name: "plain number", input: "250000", want: 250000},
		{name: "thousands separators", input: "1,000,000", want: 1000000},
		{name: "spaced range", input: "100,000 - 200,000", want: 150000},
		{name: "odd range keeps fraction", input: "1-2", want: 1.5},
		{name: "empty", input: "", want: 0},
		{name: "not a number", input: "lots", want: 0},
		{name: "trailing text", input: "50000 BDT", want: 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseVolume(tt.input))
		})
	}
}

func TestParseRate(t *testing.T) {
	assert.Equal(t, 2.5, parseRate("2.5%"))
	assert.Equal(t, 1.0, parseRate("1%"))
	assert.Equal(t, 1.8, parseRate(" 1.8 % "))
	assert.Equal(t, 0.0, parseRate("Contact us"))
	assert.Equal(t, 0.0, parseRate(""))
	// without a percent sign a value is not treated as a rate
	assert.Equal(t, 0.0, parseRate("0.025"))
	assert.Equal(t, 0.0, parseRate("n/a%"))
}

func TestParseFee(t *testing.T) {
	assert.Equal(t, int64(1000), parseFee("1,000 BDT"))
	assert.Equal(t, int64(500), parseFee("500"))
	assert.Equal(t, int64(2000), parseFee("2,000BDT"))
	assert.Equal(t, int64(0), parseFee("0"))
	assert.Equal(t, int64(0), parseFee("Free"))
	assert.Equal(t, int64(0), parseFee("Contact us"))
	assert.Equal(t, int64(0), parseFee(""))
}

func TestMatchVolume(t *testing.T) {
	tests := []struct {
		actual   string
		expected string
		want     bool
	}{
		{"550000", "500000-600000", true},
		{"650000", "500000-600000", false},
		{"650000", "600000+", true},
		{"500000", "500000-600000", true},
		{"600000", "500000-600000", true},
		{"600000", "600000+", true},
		{"599999", "600000+", false},
		{"500,000-600,000", "500000-600000", true},
		{"700000+", "600000+", true},
		{"1,000,000", "600,000+", true},
		{"custom", "custom", true},
		{"custom", "other", false},
	}

	for _, tt := range tests {
		t.Run(tt.actual+" vs "+tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.want, matchVolume(tt.actual, tt.expected))
		})
	}
}

package parser

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"INR 600.00", "600"},
		{"INR 50,000.00", "50000"},
		{"inr 1,23,456.78", "123456.78"},
		{"600.00", "600"},
		{" - ", "0"},
		{"-", "0"},
		{"", "0"},
		{"garbage", "0"},
		{"-250.00", "250"}, // never negative
	}

	for _, tt := range tests {
		got := ParseAmount(tt.in)
		want, _ := decimal.NewFromString(tt.want)
		if !got.Equal(want) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, want)
		}
	}
}

func TestParseSignedAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"-250.00", "-250"},
		{"1,000.50", "1000.50"},
		{"-INR 99.00", "-99"},
		{"-", "0"},
		{"", "0"},
		{"n/a", "0"},
	}

	for _, tt := range tests {
		got := ParseSignedAmount(tt.in)
		want, _ := decimal.NewFromString(tt.want)
		if !got.Equal(want) {
			t.Errorf("ParseSignedAmount(%q) = %s, want %s", tt.in, got, want)
		}
	}
}

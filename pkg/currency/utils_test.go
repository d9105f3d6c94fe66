package currency

import "testing"

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{10, "$10.00"},
		{999.5, "$999.50"},
		{1000, "$1,000.00"},
		{1234567.891, "$1,234,567.89"},
		{-2500.75, "-$2,500.75"},
	}

	for _, tt := range tests {
		if got := FormatUSD(tt.amount); got != tt.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatChange(t *testing.T) {
	if got := FormatChange(150.25); got != "+$150.25" {
		t.Errorf("FormatChange(150.25) = %q", got)
	}
	if got := FormatChange(-150.25); got != "-$150.25" {
		t.Errorf("FormatChange(-150.25) = %q", got)
	}
	if got := FormatChange(0); got != "+$0.00" {
		t.Errorf("FormatChange(0) = %q", got)
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(0.1); got != "10%" {
		t.Errorf("FormatRate(0.1) = %q", got)
	}
	if got := FormatRate(0.0275); got != "2.75%" {
		t.Errorf("FormatRate(0.0275) = %q", got)
	}
}

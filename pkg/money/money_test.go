package money

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		cents  Cents
		locale string
		want   string
	}{
		{1000, "en", "$10.00"},
		{123450, "en", "$1,234.50"},
		{5, "en", "$0.05"},
		{0, "en", "$0.00"},
		{1000, "", "$10.00"},
		{1000, "fr", "$10.00"},
	}
	for _, tc := range cases {
		if got := Format(tc.cents, tc.locale); got != tc.want {
			t.Fatalf("Format(%d, %q) = %q, want %q", tc.cents, tc.locale, got, tc.want)
		}
	}
}

func TestFormatSpanishLocale(t *testing.T) {
	got := Format(123450, "es")
	if got == "" || got[0] != '$' {
		t.Fatalf("unexpected es formatting: %q", got)
	}
}

func TestDollars(t *testing.T) {
	if got := Cents(1050).Dollars(); got != 10.5 {
		t.Fatalf("Dollars mismatch: got %v want 10.5", got)
	}
}

package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		if got := m.Round().String(); got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := NewMoney(100)
	b := NewMoney(40.5)
	if got := a.Add(b).String(); got != "140.50" {
		t.Fatalf("Add got %s", got)
	}
	if got := a.Sub(b).String(); got != "59.50" {
		t.Fatalf("Sub got %s", got)
	}
	if !Zero().IsZero() {
		t.Fatalf("Zero should be zero")
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in    string
		full  string
		whole string
	}{
		{"0", "$0.00", "$0"},
		{"999.5", "$999.50", "$1,000"},
		{"1234.567", "$1,234.57", "$1,235"},
		{"382198.1", "$382,198.10", "$382,198"},
		{"1000000", "$1,000,000.00", "$1,000,000"},
		{"-45210.25", "-$45,210.25", "-$45,210"},
		{"-0.001", "$0.00", "$0"},
	}
	for _, c := range cases {
		m, err := NewMoneyFromString(c.in)
		if err != nil {
			t.Fatalf("parse %s: %v", c.in, err)
		}
		if got := m.Format(); got != c.full {
			t.Errorf("Format(%s) = %q, want %q", c.in, got, c.full)
		}
		if got := m.FormatWhole(); got != c.whole {
			t.Errorf("FormatWhole(%s) = %q, want %q", c.in, got, c.whole)
		}
	}
}

package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func TestConstructors(t *testing.T) {
	a := NewAmount(12345)
	if a.String() != "12345" {
		t.Fatalf("NewAmount mismatch: got %s", a.String())
	}

	d := stddec.NewFromFloat(10.125)
	a2 := NewAmountFromDecimal(d)
	if !a2.Decimal.Equal(d) {
		t.Fatalf("NewAmountFromDecimal mismatch: got %s want %s", a2.Decimal, d)
	}

	a3, err := NewAmountFromString("324329209.35823")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a3.String() != "324329209.35823" {
		t.Fatalf("NewAmountFromString mismatch: got %s", a3.String())
	}

	if _, err := NewAmountFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRequireAmountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for malformed amount")
		}
	}()
	RequireAmount("1,000")
}

func TestRound(t *testing.T) {
	cases := []struct {
		in   string
		mode RoundingMode
		out  string
	}{
		{"2.25", HalfEven, "2.2"},
		{"2.35", HalfEven, "2.4"},
		{"2.251", HalfEven, "2.3"},
		{"2.25", HalfUp, "2.3"},
		{"2.24", HalfUp, "2.2"},
		{"2.29", Down, "2.2"},
		{"324329209.35823", HalfEven, "324329209.4"},
		{"324329209.35823", HalfUp, "324329209.4"},
	}
	for _, c := range cases {
		got := RequireAmount(c.in).Fixed(1, c.mode)
		if got != c.out {
			t.Fatalf("round(%s, %s) got %s want %s", c.in, c.mode, got, c.out)
		}
	}
}

func TestQuoRound(t *testing.T) {
	cases := []struct {
		num, den string
		mode     RoundingMode
		out      string
	}{
		{"50000000", "8000", HalfEven, "6250.0"},
		{"1", "3", HalfEven, "0.3"},
		{"2", "3", HalfEven, "0.7"},
		{"1", "4", HalfEven, "0.2"}, // 0.25 tie -> even
		{"3", "4", HalfEven, "0.8"}, // 0.75 tie -> even
		{"1", "4", HalfUp, "0.3"},
		{"1", "4", Down, "0.2"},
		{"1", "20", HalfEven, "0.0"},  // 0.05 tie, q=0 is even
		{"3", "20", HalfEven, "0.2"},  // 0.15 tie -> 0.2
		{"-1", "4", HalfEven, "-0.2"}, // sign follows the quotient
		{"-3", "4", HalfUp, "-0.8"},
		{"0", "7", HalfEven, "0.0"},
	}
	for _, c := range cases {
		got := RequireAmount(c.num).QuoRound(RequireAmount(c.den), 1, c.mode)
		if got.StringFixed(1) != c.out {
			t.Fatalf("%s/%s (%s) got %s want %s", c.num, c.den, c.mode, got.StringFixed(1), c.out)
		}
	}
}

func TestQuoRoundExactTail(t *testing.T) {
	// 0.05 + 1e-30 is just above the tie and must round up even under half-even.
	num := RequireAmount("0.050000000000000000000000000001")
	got := num.QuoRound(NewAmount(1), 1, HalfEven)
	if got.StringFixed(1) != "0.1" {
		t.Fatalf("expected exact tail to round up, got %s", got.StringFixed(1))
	}
}

func TestComparisonsAndUtils(t *testing.T) {
	if !Zero().IsZero() {
		t.Fatalf("Zero should be zero")
	}
	if !RequireAmount("0.00").IsZero() {
		t.Fatalf("0.00 should be zero regardless of scale")
	}
	if !RequireAmount("6250.0").Equal(NewAmount(6250)) {
		t.Fatalf("Equal should ignore scale")
	}
	if !RequireAmount("-0.01").IsNegative() || NewAmount(1).IsNegative() {
		t.Fatalf("IsNegative logic failure")
	}
	if got := NewAmount(500000).Mul(NewAmount(100)).String(); got != "50000000" {
		t.Fatalf("Mul got %s", got)
	}
	if got := NewAmount(1).Add(RequireAmount("0.5")).String(); got != "1.5" {
		t.Fatalf("Add got %s", got)
	}
}

func TestRoundingModeString(t *testing.T) {
	if HalfEven.String() != "half-even" || HalfUp.String() != "half-up" || Down.String() != "down" {
		t.Fatalf("unexpected mode names")
	}
	if RoundingMode(9).String() != "RoundingMode(9)" {
		t.Fatalf("unexpected fallback name: %s", RoundingMode(9))
	}
}

func TestYAML(t *testing.T) {
	var v struct {
		Quoted Amount `yaml:"quoted"`
		Bare   Amount `yaml:"bare"`
	}
	if err := yaml.Unmarshal([]byte("quoted: \"324329209.35823\"\nbare: 8000\n"), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Quoted.String() != "324329209.35823" || v.Bare.String() != "8000" {
		t.Fatalf("decoded %s / %s", v.Quoted, v.Bare)
	}

	out, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "quoted: \"324329209.35823\"\nbare: \"8000\"\n" {
		t.Fatalf("unexpected yaml: %q", out)
	}

	if err := yaml.Unmarshal([]byte("bare: [1, 2]\n"), &v); err == nil {
		t.Fatalf("expected error for sequence amount")
	}
	if err := yaml.Unmarshal([]byte("bare: ten\n"), &v); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
}

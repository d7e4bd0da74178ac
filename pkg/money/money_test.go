package money

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFromDecimalRounding(t *testing.T) {
	tests := []struct {
		in   float64
		want Cents
	}{
		{0, 0},
		{19.58, 1958},
		{1.575, 158}, // half rounds away from zero
		{0.004, 0},
		{0.005, 1},
		{100, 10000},
	}
	for _, tt := range tests {
		if got := FromDecimal(tt.in); got != tt.want {
			t.Errorf("FromDecimal(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRoundTax(t *testing.T) {
	// 18.00 * 0.0875 = 1.575 -> 1.58
	if got := RoundTax(1800, 0.0875); got != 158 {
		t.Fatalf("RoundTax(1800, 0.0875) = %d, want 158", got)
	}
	if got := RoundTax(0, 0.0875); got != 0 {
		t.Fatalf("RoundTax(0, 0.0875) = %d, want 0", got)
	}
	// exact cent: 10.00 * 0.10 = 1.00
	if got := RoundTax(1000, 0.10); got != 100 {
		t.Fatalf("RoundTax(1000, 0.10) = %d, want 100", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Cents(1958))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "19.58" {
		t.Fatalf("marshal = %s, want 19.58", b)
	}

	var c Cents
	if err := json.Unmarshal([]byte("3.00"), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c != 300 {
		t.Fatalf("unmarshal = %d, want 300", c)
	}
}

func TestFormatContainsSymbolAndCents(t *testing.T) {
	s := Cents(1958).Format()
	if !strings.Contains(s, "$") {
		t.Errorf("Format() = %q, want currency symbol", s)
	}
	if !strings.Contains(s, "19.58") {
		t.Errorf("Format() = %q, want two decimal places", s)
	}
}

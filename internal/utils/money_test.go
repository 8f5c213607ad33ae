package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundCents(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"32.2580645161", "32.26"},
		{"0.005", "0.01"},
		{"2.345", "2.35"},
		{"10", "10"},
	}
	for _, c := range cases {
		got := RoundCents(decimal.RequireFromString(c.in))
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("RoundCents(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestPctOf(t *testing.T) {
	got := PctOf(decimal.NewFromInt(200), decimal.NewFromInt(10))
	if !got.Equal(decimal.NewFromInt(20)) {
		t.Errorf("PctOf(200, 10) = %s, want 20", got)
	}
}

func TestMaxDecimal(t *testing.T) {
	a := decimal.NewFromFloat(-1.5)
	if !MaxDecimal(a, decimal.Zero).Equal(decimal.Zero) {
		t.Error("negative amount must clamp to zero")
	}
}

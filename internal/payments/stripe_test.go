package payments

import "testing"

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{19.995, 1999}, // truncated, not rounded
		{19.999, 1999},
		{20, 2000},
		{0.5, 50},
		{0.01, 1},
		{150, 15000},
	}
	for _, tc := range cases {
		if got := MinorUnits(tc.price); got != tc.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

package layout_test

import (
	"math"
	"strings"
	"testing"

	"excalc/internal/platform/layout"
)

func TestPadRight(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{in: "Weight", width: 10, want: "Weight    "},
		{in: "already long", width: 4, want: "already long"},
		{in: "─", width: 3, want: "─  "},
		{in: "", width: 2, want: "  "},
	}
	for _, tc := range cases {
		if got := layout.PadRight(tc.in, tc.width); got != tc.want {
			t.Fatalf("PadRight(%q, %d): expected %q, got %q", tc.in, tc.width, tc.want, got)
		}
	}
}

func TestNumberRoundsToTwoPlaces(t *testing.T) {
	t.Parallel()
	cases := map[float64]string{
		15:           "15.0",
		16000:        "16000.0",
		68.0388555:   "68.04",
		32.18688:     "32.19",
		0.5:          "0.5",
		0.004:        "0.0",
		1020.5828325: "1020.58",
		4.5e307:      "4.5e+307",
		1e16:         "1e+16",
	}
	for in, want := range cases {
		if got := layout.Number(in); got != want {
			t.Fatalf("Number(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestRoundHalfToEven(t *testing.T) {
	t.Parallel()
	if layout.Round(0.5) != 0 || layout.Round(1.5) != 2 || layout.Round(2.5) != 2 || layout.Round(704.76) != 705 {
		t.Fatalf("unexpected rounding")
	}
}

func TestRoundSaturatesOutsideIntRange(t *testing.T) {
	t.Parallel()
	if got := layout.Round(1.2e307); got != math.MaxInt {
		t.Fatalf("expected saturation at max int, got %d", got)
	}
	if got := layout.Round(math.Inf(1)); got != math.MaxInt {
		t.Fatalf("expected +Inf to saturate, got %d", got)
	}
	if got := layout.Round(math.Inf(-1)); got != math.MinInt {
		t.Fatalf("expected -Inf to saturate, got %d", got)
	}
	if got := layout.Round(math.NaN()); got != 0 {
		t.Fatalf("expected NaN to round to 0, got %d", got)
	}
}

func TestNumberNeverOverflowsToInf(t *testing.T) {
	t.Parallel()
	if got := layout.Number(1.7e308); strings.Contains(got, "Inf") {
		t.Fatalf("finite value printed as %q", got)
	}
}

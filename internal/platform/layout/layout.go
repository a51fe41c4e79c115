package layout

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Magnitudes from here on are written in exponent form.
const exponentFrom = 1e16

// PadRight left-justifies s in a column of width characters. Longer strings
// are returned unchanged.
func PadRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// Number formats v rounded to two decimal places. Whole numbers keep one
// decimal ("15.0") and very large magnitudes use exponent form ("4.5e+307").
func Number(v float64) string {
	if scaled := v * 100; !math.IsInf(scaled, 0) && !math.IsNaN(scaled) {
		v = math.Round(scaled) / 100
	}
	if math.IsInf(v, 0) || math.IsNaN(v) || math.Abs(v) >= exponentFrom {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// Round rounds half to even, the way the summary totals are displayed.
// Values outside the int range saturate and NaN rounds to zero.
func Round(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(math.RoundToEven(v))
}

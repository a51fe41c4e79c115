package domain

import (
	"math"
	"strings"

	"excalc/internal/platform/layout"
)

const FullBlock = '█'

// partialGlyphs covers a remainder of roughly none, half or all of a block.
var partialGlyphs = [3]rune{'░', '▌', '█'}

type Bar struct {
	Blocks  int
	Partial rune
	Rounded int
}

// NewBar draws one full block per perBlock calories and a partial glyph for
// the remainder, rounded half to even onto the three glyph states.
func NewBar(calories, perBlock float64) Bar {
	if math.IsNaN(calories) || math.IsInf(calories, 0) {
		return Bar{Partial: partialGlyphs[0], Rounded: layout.Round(calories)}
	}
	blocks := int(math.Floor(calories / perBlock))
	remainder := math.Mod(calories, perBlock)
	idx := int(math.RoundToEven(remainder / (perBlock / 2)))
	if idx < 0 {
		idx = 0
	}
	if idx > len(partialGlyphs)-1 {
		idx = len(partialGlyphs) - 1
	}
	if blocks < 0 {
		blocks = 0
	}
	return Bar{
		Blocks:  blocks,
		Partial: partialGlyphs[idx],
		Rounded: layout.Round(calories),
	}
}

func (b Bar) String() string {
	return strings.Repeat(string(FullBlock), b.Blocks) + string(b.Partial)
}

// Total sums the unrounded values and rounds once.
func Total(calories []float64) int {
	sum := 0.0
	for _, c := range calories {
		sum += c
	}
	return layout.Round(sum)
}

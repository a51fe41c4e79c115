package domain

import (
	"math"
	"strconv"
	"strings"

	"excalc/internal/modules/prompt/dto"
	apperrors "excalc/internal/platform/errors"
)

// OptionsQuery lists the valid options instead of being matched.
const OptionsQuery = "options"

func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// ParsePositive accepts finite decimal numbers strictly greater than zero,
// with an optional sign and exponent. Hex floats and infinities are not numbers.
func ParsePositive(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if strings.ContainsAny(text, "xX") {
		return 0, apperrors.ErrNotANumber
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(value, 0) {
		return 0, apperrors.ErrNotANumber
	}
	if math.IsNaN(value) || value <= 0 {
		return 0, apperrors.ErrNotPositive
	}
	return value, nil
}

func MatchOption(text string, options dto.OptionSet) (int, error) {
	idx := options.Index(Normalize(text))
	if idx < 0 {
		return -1, apperrors.ErrNotAnOption
	}
	return idx, nil
}

// ParseYesNo reports the answer and whether the default was used. Empty input
// is only accepted when def is set.
func ParseYesNo(text string, def *bool) (value bool, usedDefault bool, err error) {
	switch Normalize(text) {
	case "yes", "y":
		return true, false, nil
	case "no", "n":
		return false, false, nil
	case "":
		if def != nil {
			return *def, true, nil
		}
	}
	return false, false, apperrors.ErrNotYesNo
}

func YesNoWord(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

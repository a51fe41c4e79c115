package apperrors

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotANumber      = errors.New("not a number")
	ErrNotPositive     = errors.New("not greater than zero")
	ErrNotAnOption     = errors.New("not an option")
	ErrNotYesNo        = errors.New("not a yes or no")
	ErrInputClosed     = errors.New("input closed")
	ErrUnknownExercise = errors.New("unknown exercise")
)

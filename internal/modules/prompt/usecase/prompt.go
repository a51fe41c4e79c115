package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"excalc/internal/modules/prompt/domain"
	"excalc/internal/modules/prompt/dto"
	promptin "excalc/internal/modules/prompt/port/in"
	"excalc/internal/modules/prompt/service"
	apperrors "excalc/internal/platform/errors"
)

type Interactor struct {
	console        *service.ConsoleService
	logger         *slog.Logger
	optionsListing bool
}

func NewInteractor(console *service.ConsoleService, logger *slog.Logger, optionsListing bool) promptin.Reader {
	return &Interactor{console: console, logger: logger, optionsListing: optionsListing}
}

func (i *Interactor) PositiveNumber(ctx context.Context, label string) (float64, error) {
	for {
		text, err := i.console.Ask(ctx, label)
		if err != nil {
			return 0, err
		}
		value, err := domain.ParsePositive(text)
		if err == nil {
			return value, nil
		}
		i.logRejection(label, text, err)
		input := domain.Normalize(text)
		if errors.Is(err, apperrors.ErrNotANumber) {
			err = i.console.Reject(
				fmt.Sprintf("'%s' is not a number. Please try again.", input),
				"(You must use digits, not words, as in '10', not 'ten'.)",
			)
		} else {
			err = i.console.Reject(fmt.Sprintf("%s is not greater than zero. Please try again.", input))
		}
		if err != nil {
			return 0, err
		}
	}
}

func (i *Interactor) OneOf(ctx context.Context, label string, options dto.OptionSet) (int, error) {
	for {
		text, err := i.console.Ask(ctx, label)
		if err != nil {
			return -1, err
		}
		input := domain.Normalize(text)
		if i.optionsListing && input == domain.OptionsQuery {
			// The list stays on screen for reference, so no rewind here.
			lines := append([]string{"", "Options:"}, options.Names()...)
			if err := i.console.Println(append(lines, "")...); err != nil {
				return -1, err
			}
			continue
		}
		idx, err := domain.MatchOption(input, options)
		if err == nil {
			return idx, nil
		}
		i.logRejection(label, text, err)
		diagnostics := []string{fmt.Sprintf("'%s' is not an option. Please try again.", input)}
		if i.optionsListing {
			diagnostics = append(diagnostics, "(To see the possible options, enter 'options'.)")
		}
		if err := i.console.Reject(diagnostics...); err != nil {
			return -1, err
		}
	}
}

func (i *Interactor) YesNo(ctx context.Context, label string, def *bool) (bool, error) {
	if def != nil {
		label += " (default: " + domain.YesNoWord(*def) + ")"
	}
	for {
		text, err := i.console.Ask(ctx, label)
		if err != nil {
			return false, err
		}
		value, usedDefault, err := domain.ParseYesNo(text, def)
		if err == nil {
			if usedDefault {
				if err := i.console.Echo(label, domain.YesNoWord(value)); err != nil {
					return false, err
				}
			}
			return value, nil
		}
		i.logRejection(label, text, err)
		if err := i.console.Reject(fmt.Sprintf("'%s' is not a yes or no. Please try again.", domain.Normalize(text))); err != nil {
			return false, err
		}
	}
}

func (i *Interactor) logRejection(label, input string, reason error) {
	i.logger.Debug("input rejected", "label", label, "input", input, "reason", reason)
}

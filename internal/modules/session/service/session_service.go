package service

import (
	"log/slog"

	"excalc/internal/modules/session/domain"
)

type SessionService struct {
	logger         *slog.Logger
	optionsListing bool
}

func NewSessionService(logger *slog.Logger, optionsListing bool) *SessionService {
	return &SessionService{logger: logger, optionsListing: optionsListing}
}

func (s *SessionService) Commands() []string {
	return domain.Commands(s.optionsListing)
}

// ListsStyles reports whether command is the style listing and it is enabled.
func (s *SessionService) ListsStyles(command string) bool {
	return s.optionsListing && command == domain.CommandSwimmingStyles
}

func (s *SessionService) Record(tally *domain.Tally, command string, calories float64) (domain.Record, error) {
	record := domain.Record{Command: command, Calories: calories}
	if err := tally.Append(record); err != nil {
		s.logger.Debug("exercise not recorded", "command", command, "calories", calories, "reason", err)
		return domain.Record{}, err
	}
	s.logger.Debug("exercise recorded", "command", command, "calories", calories, "count", tally.Len())
	return record, nil
}

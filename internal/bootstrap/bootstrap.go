package bootstrap

import (
	"fmt"
	"io"

	exerciseinadapter "excalc/internal/modules/exercise/adapter/in"
	exerciseoutadapter "excalc/internal/modules/exercise/adapter/out"
	exerciseservice "excalc/internal/modules/exercise/service"
	exerciseusecase "excalc/internal/modules/exercise/usecase"
	promptservice "excalc/internal/modules/prompt/service"
	promptusecase "excalc/internal/modules/prompt/usecase"
	sessioninadapter "excalc/internal/modules/session/adapter/in"
	sessionoutadapter "excalc/internal/modules/session/adapter/out"
	sessionservice "excalc/internal/modules/session/service"
	sessionusecase "excalc/internal/modules/session/usecase"
	summaryservice "excalc/internal/modules/summary/service"
	summaryusecase "excalc/internal/modules/summary/usecase"
	"excalc/internal/platform/config"
	"excalc/internal/platform/logging"
	"excalc/internal/platform/terminal"
	"excalc/internal/platform/theme"
)

// IO groups the streams the application talks to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type App struct {
	SessionCLI  sessioninadapter.CLIHandler
	ExerciseCLI exerciseinadapter.CLIHandler
}

func New(cfg config.Config, streams IO) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, streams.Err)
	rewriter := terminal.New(cfg.Escapes)
	styles := theme.New(streams.Out, cfg.Escapes)

	promptUC := promptusecase.NewInteractor(
		promptservice.NewConsoleService(streams.In, streams.Out, rewriter, styles, cfg.LabelWidth),
		logger.With("module", "prompt"),
		cfg.OptionsListing,
	)

	catalog, err := exerciseoutadapter.NewEmbeddedStyleCatalog()
	if err != nil {
		return nil, fmt.Errorf("new style catalog: %w", err)
	}
	exerciseUC := exerciseusecase.NewInteractor(
		exerciseservice.NewCalculatorService(catalog),
		exerciseoutadapter.NewPromptBridge(promptUC),
		cfg.TreadmillQuestion,
	)

	summaryUC := summaryusecase.NewInteractor(
		summaryservice.NewRenderer(streams.Out, styles, cfg.BarLabelWidth, cfg.CaloriesPerBlock),
	)

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(logger.With("module", "session"), cfg.OptionsListing),
		promptUC,
		exerciseUC,
		summaryUC,
		sessionoutadapter.NewConsoleDisplay(streams.Out, styles, cfg.LabelWidth),
	)

	logger.Debug("application wired",
		"escapes", cfg.Escapes,
		"treadmill_question", cfg.TreadmillQuestion,
		"options_listing", cfg.OptionsListing,
	)
	return &App{
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		ExerciseCLI: exerciseinadapter.NewCLIHandler(exerciseUC),
	}, nil
}

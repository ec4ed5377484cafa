package kfrag

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/kfrag/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App runs a one-shot job assembled from Fx modules.
type App struct {
	app    *fx.App
	logger *slog.Logger
}

// NewApp creates an App. The job's modules do their work in OnStart hooks.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.LogOutput == nil {
		options.LogOutput = os.Stderr
	}

	logger := createLogger(options.LogLevel, options.LogFormat, options.LogOutput)
	slog.SetDefault(logger)

	return &App{
		app:    configure(&options, logger),
		logger: logger,
	}
}

func configure(options *Options, logger *slog.Logger) *fx.App {
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}),
		fx.Supply(logger),
		fx.Options(options.Modules...),
	)
}

func createLogger(level, format string, w io.Writer) *slog.Logger {
	return logging.NewLogger(logging.LoggerConfig{Level: level, Format: format}, w)
}

// Logger returns the logger shared with the Fx container.
func (app *App) Logger() *slog.Logger {
	if app == nil || app.logger == nil {
		return slog.Default()
	}

	return app.logger
}

// Start starts the Fx application, running every OnStart hook.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Stop stops the Fx application.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Execute starts and then stops the app, returning the first error.
func (app *App) Execute() error {
	err := app.Start()
	if err != nil {
		return err
	}

	return app.Stop()
}

package emit

import (
	"context"
	"log/slog"

	"github.com/0xalexb/kfrag/config"
	"github.com/0xalexb/kfrag/config/env"
	filefetcher "github.com/0xalexb/kfrag/config/fetcher/file"
	yamlparser "github.com/0xalexb/kfrag/config/parser/yaml"
	"github.com/0xalexb/kfrag/kconfig"

	"go.uber.org/fx"
)

// ModuleName is the Fx module name.
const ModuleName = "emit"

// NewModule creates an Fx module that loads the build description named by
// the environment and emits its outputs when the app starts.
//
// lookup is usually os.LookupEnv. Fragments are created under root; pass
// "" or "." for the working directory. The module needs a *slog.Logger in
// the container.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(lookup env.LookupFunc, root string) fx.Option {
	return fx.Module(ModuleName,
		fx.Provide(
			func() (*env.Environment, error) {
				return env.Load(lookup)
			},
			fx.Annotate(
				newFetcher,
				fx.As(new(config.DataFetcher)),
			),
			fx.Annotate(
				yamlparser.NewParser,
				fx.As(new(config.Parser)),
			),
			config.Provider(&kconfig.Document{}, ""),
			func(environment *env.Environment, logger *slog.Logger) *Emitter {
				return NewEmitter(environment.ConfigFile, environment.OutputFile, root, logger)
			},
		),
		fx.Invoke(func(lifecycle fx.Lifecycle, emitter *Emitter, doc *kconfig.Document) {
			lifecycle.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return emitter.Emit(ctx, doc)
				},
			})
		}),
	)
}

func newFetcher(environment *env.Environment, logger *slog.Logger) (*filefetcher.Fetcher, error) {
	fetcher, err := filefetcher.NewFetcher(environment.ConfigFile)()
	if err != nil {
		return nil, config.Wrap(config.KindIO, "read", err)
	}

	logger.Debug("build description loaded", slog.String("path", fetcher.Path()))

	return fetcher, nil
}

// Command kfrag turns a kernel build description into CI step outputs and a
// kernel config fragment.
//
// It reads the YAML file named by CONFIG_FILE, writes the
// version=, ktype= and frag= lines to the file named by GITHUB_OUTPUT, and
// writes the configs mapping as KEY=value lines to frags/<name>.config.
// LOG_LEVEL and LOG_FORMAT tune the diagnostics written to stderr.
package main

import (
	"log/slog"
	"os"

	"github.com/0xalexb/kfrag"
	"github.com/0xalexb/kfrag/config"
	"github.com/0xalexb/kfrag/config/env"
	"github.com/0xalexb/kfrag/emit"
)

func main() {
	app := kfrag.NewApp(
		kfrag.WithLogLevel(os.Getenv(env.LogLevelVar)),
		kfrag.WithLogFormat(os.Getenv(env.LogFormatVar)),
		kfrag.WithModules(emit.NewModule(os.LookupEnv, ".")),
	)

	logger := app.Logger()
	logger.Debug("starting", slog.String("version", kfrag.Version), slog.String("compiled_at", kfrag.CompiledAt))

	err := app.Execute()
	if err != nil {
		logger.Error("kfrag failed", slog.String("kind", string(config.KindOf(err))), slog.Any("error", err))
		os.Exit(1)
	}
}

package emit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/0xalexb/kfrag/config"
	"github.com/0xalexb/kfrag/kconfig"

	"go.uber.org/multierr"
)

// filePerm is the mode of newly created output and fragment files.
const filePerm = 0o644

// ErrNilDocument is returned by Emit when there is nothing to write.
var ErrNilDocument = errors.New("document must not be nil")

// Emitter writes the pipeline outputs and the config fragment for one
// build description.
type Emitter struct {
	inputPath  string
	outputPath string
	root       string
	logger     *slog.Logger
}

// NewEmitter creates an Emitter.
//
// inputPath names the build description and determines the fragment name.
// outputPath is the pipeline output file. Fragments are created under
// root; an empty root means the working directory.
func NewEmitter(inputPath, outputPath, root string, logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Emitter{
		inputPath:  inputPath,
		outputPath: outputPath,
		root:       root,
		logger:     logger,
	}
}

// Emit writes the output record, then the fragment. Both files are created
// or truncated. The fragment directory must already exist.
//
// A failure while writing the fragment leaves the output file in place.
// Errors are *config.Error values of kind config.KindIO.
func (e *Emitter) Emit(ctx context.Context, doc *kconfig.Document) error {
	if doc == nil {
		return &config.Error{Kind: config.KindConfig, Op: "emit", Err: ErrNilDocument}
	}

	fragPath := kconfig.FragmentPath(e.inputPath)

	err := writeFile(e.outputPath, func(w io.Writer) error {
		return WriteOutputs(w, doc, fragPath)
	})
	if err != nil {
		return &config.Error{Kind: config.KindIO, Op: "write outputs", Key: e.outputPath, Err: err}
	}

	e.logger.DebugContext(ctx, "pipeline outputs written",
		slog.String("path", e.outputPath),
		slog.String("version", doc.Version),
		slog.String("ktype", doc.Type),
	)

	fragFile := filepath.Join(e.root, filepath.FromSlash(fragPath))

	err = writeFile(fragFile, func(w io.Writer) error {
		return WriteFragment(w, doc.Configs)
	})
	if err != nil {
		return &config.Error{Kind: config.KindIO, Op: "write fragment", Key: fragPath, Err: err}
	}

	for _, entry := range doc.Configs {
		e.logger.DebugContext(ctx, "config written", slog.String("key", entry.Key), slog.String("value", entry.Value))
	}

	e.logger.InfoContext(ctx, "fragment written",
		slog.String("frag", fragPath),
		slog.Int("entries", len(doc.Configs)),
	)

	return nil
}

// writeFile creates or truncates path and hands it to write. The file is
// closed on every path; a close error is reported alongside a write error.
func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.OpenFile(filepath.Clean(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm) // #nosec G304 -- paths come from the job environment
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}

	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("closing %q: %w", path, closeErr))
		}
	}()

	return write(file)
}

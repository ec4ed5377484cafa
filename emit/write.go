package emit

import (
	"bufio"
	"fmt"
	"io"

	"github.com/0xalexb/kfrag/kconfig"
)

// Keys written to the pipeline output file, in order.
const (
	VersionOutput  = "version"
	KTypeOutput    = "ktype"
	FragmentOutput = "frag"
)

// WriteOutputs writes the three pipeline output lines.
func WriteOutputs(w io.Writer, doc *kconfig.Document, fragPath string) error {
	buf := bufio.NewWriter(w)

	for _, line := range [][2]string{
		{VersionOutput, doc.Version},
		{KTypeOutput, doc.Type},
		{FragmentOutput, fragPath},
	} {
		_, err := fmt.Fprintf(buf, "%s=%s\n", line[0], line[1])
		if err != nil {
			return fmt.Errorf("writing %s output: %w", line[0], err)
		}
	}

	err := buf.Flush()
	if err != nil {
		return fmt.Errorf("flushing outputs: %w", err)
	}

	return nil
}

// WriteFragment writes one KEY=value line per entry, unquoted.
func WriteFragment(w io.Writer, entries []kconfig.Entry) error {
	buf := bufio.NewWriter(w)

	for _, entry := range entries {
		_, err := buf.WriteString(entry.String() + "\n")
		if err != nil {
			return fmt.Errorf("writing %s: %w", entry.Key, err)
		}
	}

	err := buf.Flush()
	if err != nil {
		return fmt.Errorf("flushing fragment: %w", err)
	}

	return nil
}

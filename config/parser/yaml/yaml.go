package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the requested path does not exist in the document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser for YAML documents.
type Parser struct{}

// NewParser creates a new YAML parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data into target. With an empty path, targets implementing
// yaml.BytesUnmarshaler receive data unchanged; goccy would otherwise hand
// them a re-serialized node, which does not round-trip every escape.
//
// The path uses colon (:) as separator; an empty path decodes the whole document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		if unmarshaler, ok := target.(yaml.BytesUnmarshaler); ok {
			err := unmarshaler.UnmarshalYAML(data)
			if err != nil {
				return fmt.Errorf("unmarshal error: %w", err)
			}

			return nil
		}

		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath turns "build:kernel" into "$.build.kernel".
func convertToYAMLPath(path string) string {
	return "$." + strings.Join(strings.Split(path, ":"), ".")
}

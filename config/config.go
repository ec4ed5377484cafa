package config

import (
	"log/slog"
)

// Parser decodes raw configuration data into a target structure.
//
// The path parameter selects a section of the document using colon (:) as
// the separator for nested keys, e.g. "build:kernel". An empty path decodes
// the whole document.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher returns the raw bytes of a configuration source.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator is implemented by configuration structures that can check
// themselves after parsing.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by configuration structures that fill in
// missing values before validation.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that fetches, parses, defaults and validates
// configuration data into target.
//
// Every returned error is an *Error. Errors already classified by a lower
// layer keep their kind; otherwise fetch failures are KindIO, parse
// failures KindParse and validation failures KindConfig.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, Wrap(KindIO, "fetch", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, Wrap(KindParse, "parse", err)
		}

		if defaulter, ok := any(target).(Defaulter); ok {
			if defaulter.SetDefaults() {
				slog.Debug("defaults applied", slog.String("path", path))
			}
		}

		if validator, ok := any(target).(Validator); ok {
			err = validator.Validate()
			if err != nil {
				return nil, Wrap(KindConfig, "validate", err)
			}
		}

		return target, nil
	}
}

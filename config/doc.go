// Package config loads structured configuration through a small pipeline.
//
// The pipeline has four extension points:
//   - DataFetcher: retrieves raw bytes (a file, the process environment)
//   - Parser: decodes bytes into a struct, optionally below a path
//   - Defaulter: fills in missing values
//   - Validator: checks the decoded struct
//
// Provider chains them and classifies failures into an *Error with a Kind,
// so callers can tell configuration, I/O, parse, missing-key and type
// failures apart with KindOf or errors.As.
//
// # Example
//
//	provider := config.Provider(&kconfig.Document{}, "")
//	doc, err := provider(yamlparser.NewParser(), fetcher)
//	if config.KindOf(err) == config.KindMissingKey {
//	    // ...
//	}
package config

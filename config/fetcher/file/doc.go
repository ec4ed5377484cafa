// Package file provides a file-based DataFetcher for the config package.
//
// The build description is read once at construction time; later calls to
// Fetch return a copy of the same bytes even if the file changes on disk.
//
// Usage:
//
//	fetcher, err := file.NewFetcher(os.Getenv("CONFIG_FILE"))()
//	if errors.Is(err, fs.ErrNotExist) {
//	    // input missing
//	}
//	data, err := fetcher.Fetch()
package file

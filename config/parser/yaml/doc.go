// Package yaml provides the YAML Parser used to decode build descriptions.
//
// It is backed by github.com/goccy/go-yaml. Colon-separated paths such as
// "build:kernel" are converted to YAML path syntax ("$.build.kernel")
// before reading, so a section of a larger document can be decoded on its own.
package yaml

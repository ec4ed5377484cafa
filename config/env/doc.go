// Package env reads the job settings from the process environment.
//
// CONFIG_FILE and GITHUB_OUTPUT are required. LOG_LEVEL is optional and
// consumed by the command when it builds the logger.
package env

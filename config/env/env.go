package env

import (
	"errors"

	"github.com/0xalexb/kfrag/config"
)

// Variable names read from the process environment.
const (
	ConfigFileVar = "CONFIG_FILE"
	OutputFileVar = "GITHUB_OUTPUT"
	// LogLevelVar and LogFormatVar are optional and read by the command
	// before the app starts.
	LogLevelVar  = "LOG_LEVEL"
	LogFormatVar = "LOG_FORMAT"
)

// ErrMissingVariable is returned when a required variable is unset or empty.
var ErrMissingVariable = errors.New("environment variable not set")

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Environment holds the settings the job takes from its environment.
type Environment struct {
	// ConfigFile is the path of the YAML build description.
	ConfigFile string
	// OutputFile is the CI step output file that receives key=value lines.
	OutputFile string
}

// Load reads the environment through lookup and validates the result. A nil lookup is treated as an empty environment.
func Load(lookup LookupFunc) (*Environment, error) {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}

	get := func(key string) string {
		value, _ := lookup(key)

		return value
	}

	environment := &Environment{
		ConfigFile: get(ConfigFileVar),
		OutputFile: get(OutputFileVar),
	}

	err := environment.Validate()
	if err != nil {
		return nil, err
	}

	return environment, nil
}

// Validate reports the first missing required variable as a KindConfig error.
func (e *Environment) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{ConfigFileVar, e.ConfigFile},
		{OutputFileVar, e.OutputFile},
	}

	for _, variable := range required {
		if variable.value == "" {
			return &config.Error{Kind: config.KindConfig, Op: "environment", Key: variable.name, Err: ErrMissingVariable}
		}
	}

	return nil
}

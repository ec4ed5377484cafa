package env

import (
	"testing"

	"github.com/0xalexb/kfrag/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := vars[key]

		return value, ok
	}
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	environment, err := Load(mapLookup(map[string]string{
		ConfigFileVar: "configs/x86.yaml",
		OutputFileVar: "/tmp/out",
		LogLevelVar:   "debug",
		"HOME":        "/root",
	}))

	require.NoError(t, err)
	assert.Equal(t, "configs/x86.yaml", environment.ConfigFile)
	assert.Equal(t, "/tmp/out", environment.OutputFile)
}

func TestLoad_MissingVariables(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		vars    map[string]string
		wantKey string
	}{
		{
			name:    "nothing set",
			vars:    map[string]string{},
			wantKey: ConfigFileVar,
		},
		{
			name:    "output missing",
			vars:    map[string]string{ConfigFileVar: "a.yaml"},
			wantKey: OutputFileVar,
		},
		{
			name:    "config empty",
			vars:    map[string]string{ConfigFileVar: "", OutputFileVar: "out"},
			wantKey: ConfigFileVar,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			environment, err := Load(mapLookup(testCase.vars))

			require.Error(t, err)
			assert.Nil(t, environment)
			require.ErrorIs(t, err, ErrMissingVariable)
			assert.Equal(t, config.KindConfig, config.KindOf(err))

			var cfgErr *config.Error

			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, testCase.wantKey, cfgErr.Key)
		})
	}
}

func TestLoad_NilLookup(t *testing.T) {
	t.Parallel()

	_, err := Load(nil)

	require.ErrorIs(t, err, ErrMissingVariable)
}

package kfrag_test

import (
	"bytes"
	"testing"

	"github.com/0xalexb/kfrag"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestWithLogLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		level    string
		expected string
	}{
		{name: "debug level", level: "debug", expected: "debug"},
		{name: "error level", level: "error", expected: "error"},
		{name: "empty level", level: "", expected: ""},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var opts kfrag.Options

			kfrag.WithLogLevel(testCase.level)(&opts)

			require.Equal(t, testCase.expected, opts.LogLevel)
		})
	}
}

func TestWithLogFormatAndOutput(t *testing.T) {
	t.Parallel()

	var (
		opts kfrag.Options
		buf  bytes.Buffer
	)

	require.Empty(t, opts.LogFormat)
	require.Nil(t, opts.LogOutput)

	kfrag.WithLogFormat("text")(&opts)
	kfrag.WithLogOutput(&buf)(&opts)

	require.Equal(t, "text", opts.LogFormat)
	require.Same(t, &buf, opts.LogOutput)
}

func TestWithModules(t *testing.T) {
	t.Parallel()

	var opts kfrag.Options

	kfrag.WithModules(fx.Module("test1"))(&opts)
	require.Len(t, opts.Modules, 1)

	kfrag.WithModules(fx.Module("test2"), fx.Module("test3"))(&opts)
	require.Len(t, opts.Modules, 3)
}

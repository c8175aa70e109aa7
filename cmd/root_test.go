package cmd

import (
	"bytes"
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/ethpandaops/tickres/internal/config"
	"github.com/ethpandaops/tickres/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, level, src string) {
	t.Helper()

	t.Setenv(config.EnvLogLevel, level)
	t.Setenv(config.EnvSource, src)
	t.Setenv(config.EnvMeasureRounds, "")

	var logs bytes.Buffer
	Logger.SetOutput(&logs)
	InitLogger()
	t.Cleanup(func() {
		Logger = newLogger(os.Stderr, logrus.InfoLevel)
		appConfig = config.Default()
	})
}

// runWithArgs runs the command the way main does, with args on os.Args.
func runWithArgs(t *testing.T, args ...string) (string, string) {
	t.Helper()

	origArgs := os.Args
	os.Args = append([]string{"tickres"}, args...)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		os.Args = origArgs
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	require.NoError(t, execute())

	return stdout.String(), stderr.String()
}

func TestRootCommand(t *testing.T) {
	setEnv(t, "", "host")

	base, _ := runWithArgs(t)

	line := strings.TrimSuffix(base, "\n")
	require.NotContains(t, line, "\n")
	value, ok := strings.CutPrefix(line, report.Label+" ")
	require.True(t, ok, "unexpected output %q", base)

	res, err := strconv.ParseFloat(value, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res, 0.0)

	for _, args := range [][]string{
		{"extra"},
		{"--help"},
		{"-v", "--source=measured", "a", "b"},
		{"completion"},
		{"completion", "bash"},
		{"__complete", ""},
		{"__completeNoDesc", "x"},
		{"help"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, _ := runWithArgs(t, args...)
			assert.Equal(t, base, out)
		})
	}
}

func TestRootCommandCompletionDisabled(t *testing.T) {
	setEnv(t, "", "runtime")

	var stdout bytes.Buffer
	rootCmd.SetArgs([]string{"completion", "bash"})
	rootCmd.SetOut(&stdout)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "Tick count resolution: 1e-09\n", stdout.String())
}

func TestInitLogger(t *testing.T) {
	setEnv(t, "debug", "measured")

	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())
	assert.Equal(t, "measured", string(appConfig.Source))
}

func TestRootCommandInvalidConfig(t *testing.T) {
	var logs bytes.Buffer
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvSource, "sundial")
	t.Setenv(config.EnvMeasureRounds, "")
	Logger.SetOutput(&logs)
	InitLogger()
	t.Cleanup(func() {
		Logger = newLogger(os.Stderr, logrus.InfoLevel)
		appConfig = config.Default()
	})

	assert.Contains(t, logs.String(), "Ignoring invalid configuration")

	out, _ := runWithArgs(t)
	assert.True(t, strings.HasPrefix(out, report.Label))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRootCommandWriteErrorExitsCleanly(t *testing.T) {
	setEnv(t, "", "runtime")

	var stderr bytes.Buffer
	rootCmd.SetOut(failingWriter{})
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	require.NoError(t, execute())
	assert.Contains(t, stderr.String(), "Failed to report resolution")
}

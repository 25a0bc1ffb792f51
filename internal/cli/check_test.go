// check_test.go exercises the check and suite commands end to end
// through cobra, asserting the exit-code contract without spawning
// the binary.
package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/tomlcheck/internal/model"
)

// writeFixture writes content to a file under a fresh temp directory
// and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the root command with the given arguments and returns
// the error cobra produced. Flag globals are reset afterwards so tests
// do not leak state into each other.
func execute(t *testing.T, args ...string) error {
	t.Helper()

	t.Cleanup(func() {
		jsonOutput = false
		verbose = false
		checkEngine = ""
		checkExpect = ""
	})

	root := NewRootCommand()
	root.SetArgs(args)
	return root.Execute()
}

// exitCodeOf extracts the exit code a command run would produce:
// 0 for nil, the sentinel's code for exitError, the carried code for
// CLIError, and 1 for anything else. This mirrors Execute's mapping.
func exitCodeOf(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitCheckFailed
}

// TestCheckCommand_MalformedFixture verifies the happy path of the
// whole tool: a fixture missing its closing quote exits 0.
func TestCheckCommand_MalformedFixture(t *testing.T) {
	path := writeFixture(t, "secrets.toml", "key = \"unterminated\n")

	err := execute(t, "check", path)

	assert.Equal(t, model.ExitSuccess, exitCodeOf(err))
}

// TestCheckCommand_ValidFixtureFails verifies that well-formed input
// under the default expect=invalid exits 1.
func TestCheckCommand_ValidFixtureFails(t *testing.T) {
	path := writeFixture(t, "secrets.toml", "key = \"valid\"\n")

	err := execute(t, "check", path)

	require.Error(t, err)
	assert.Equal(t, model.ExitCheckFailed, exitCodeOf(err))
	// The result was already rendered; the error must be the silent
	// sentinel, not a printable error.
	var exitErr *exitError
	assert.True(t, errors.As(err, &exitErr))
}

// TestCheckCommand_MissingFixture verifies the unexpected-error branch
// exits 1.
func TestCheckCommand_MissingFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	err := execute(t, "check", path)

	assert.Equal(t, model.ExitCheckFailed, exitCodeOf(err))
}

// TestCheckCommand_ExpectValid verifies the inverted expectation flag.
func TestCheckCommand_ExpectValid(t *testing.T) {
	path := writeFixture(t, "config.toml", "key = \"valid\"\n")

	err := execute(t, "check", "--expect", "valid", path)

	assert.Equal(t, model.ExitSuccess, exitCodeOf(err))
}

// TestCheckCommand_EngineSelection verifies both engines are reachable
// through the --engine flag and agree on the core fixture.
func TestCheckCommand_EngineSelection(t *testing.T) {
	for _, engineName := range []string{"gotoml", "burntsushi"} {
		t.Run(engineName, func(t *testing.T) {
			path := writeFixture(t, "secrets.toml", "key = \"unterminated\n")

			err := execute(t, "check", "--engine", engineName, path)

			assert.Equal(t, model.ExitSuccess, exitCodeOf(err))
		})
	}
}

// TestCheckCommand_BadFlags verifies that unknown engine or expectation
// values are rejected as plain errors, not silent exits.
func TestCheckCommand_BadFlags(t *testing.T) {
	path := writeFixture(t, "secrets.toml", "key = \"unterminated\n")

	t.Run("unknown engine", func(t *testing.T) {
		err := execute(t, "check", "--engine", "tomllib", path)
		require.Error(t, err)
		var exitErr *exitError
		assert.False(t, errors.As(err, &exitErr))
	})

	t.Run("unknown expectation", func(t *testing.T) {
		err := execute(t, "check", "--expect", "maybe", path)
		require.Error(t, err)
	})
}

// TestSuiteCommand verifies suite-level exit codes: all-pass, partial
// failure, and an invalid suite definition.
func TestSuiteCommand(t *testing.T) {
	t.Run("all checks pass", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.toml"), []byte("key = \"unterminated\n"), 0o644))
		suitePath := filepath.Join(dir, "checks.yaml")
		require.NoError(t, os.WriteFile(suitePath, []byte("checks:\n  - path: bad.toml\n"), 0o644))

		err := execute(t, "suite", suitePath)

		assert.Equal(t, model.ExitSuccess, exitCodeOf(err))
	})

	t.Run("failing check exits 1", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "good.toml"), []byte("key = \"valid\"\n"), 0o644))
		suitePath := filepath.Join(dir, "checks.yaml")
		require.NoError(t, os.WriteFile(suitePath, []byte("checks:\n  - path: good.toml\n"), 0o644))

		err := execute(t, "suite", suitePath)

		assert.Equal(t, model.ExitCheckFailed, exitCodeOf(err))
	})

	t.Run("invalid suite file exits 2", func(t *testing.T) {
		suitePath := writeFixture(t, "checks.yaml", "checks: []\n")

		err := execute(t, "suite", suitePath)

		assert.Equal(t, model.ExitSuiteInvalid, exitCodeOf(err))
	})
}

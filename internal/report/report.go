package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/shinji-kodama/tomlcheck/internal/model"
)

// Colors for the three message classes. fatih/color disables itself
// when the output is not a terminal, so CI logs stay plain.
var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
)

// Render writes the human-readable message block for a single check
// result. Each outcome bucket has a fixed glyph-prefixed headline;
// where a decoder or I/O error detail exists it follows on an
// indented line.
func Render(w io.Writer, res model.CheckResult) {
	switch res.Outcome {
	case model.OutcomeCaught:
		if res.Expectation == model.ExpectValid {
			failColor.Fprintln(w, "❌ ERROR: TOML validation failed unexpectedly:")
			fmt.Fprintf(w, "   %s\n", res.Detail)
			return
		}
		passColor.Fprintln(w, "✅ TOML validation correctly caught error:")
		fmt.Fprintf(w, "   %s\n", res.Detail)

	case model.OutcomeUnexpectedSuccess:
		if res.Expectation == model.ExpectValid {
			passColor.Fprintln(w, "✅ TOML parsed successfully")
			return
		}
		failColor.Fprintln(w, "❌ ERROR: TOML validation should have failed!")
		fmt.Fprintln(w, "   Missing closing quote was not detected!")

	case model.OutcomeUnexpectedError:
		warnColor.Fprintf(w, "⚠️  Unexpected error: %s\n", res.Detail)
	}
}

// RenderSummary writes the aggregate line printed after a suite run.
func RenderSummary(w io.Writer, passed, failed int) {
	total := passed + failed
	if failed == 0 {
		passColor.Fprintf(w, "✅ %d/%d checks passed\n", passed, total)
		return
	}
	failColor.Fprintf(w, "❌ %d/%d checks passed, %d failed\n", passed, total, failed)
}

// ExitFor maps a check result to the process exit code: 0 when the
// outcome satisfied the expectation, 1 otherwise. Both the
// accepted-malformed-input case and the unexpected-error case map to
// 1; scripts only need to know the check did not hold.
func ExitFor(res model.CheckResult) model.ExitCode {
	if res.Passed() {
		return model.ExitSuccess
	}
	return model.ExitCheckFailed
}

// RenderJSON writes v as indented JSON followed by a newline. Used for
// the --json output mode with a CheckResult or a suite summary.
func RenderJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

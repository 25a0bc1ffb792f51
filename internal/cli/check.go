package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tomlcheck/internal/checker"
	"github.com/shinji-kodama/tomlcheck/internal/engine"
	"github.com/shinji-kodama/tomlcheck/internal/model"
	"github.com/shinji-kodama/tomlcheck/internal/report"
)

// Flag variables for the check command.
var (
	// checkEngine selects the decoder engine by name.
	checkEngine string

	// checkExpect sets the expectation for the fixture.
	checkExpect string
)

// NewCheckCommand creates the `check` subcommand.
//
// check runs a single one-shot validation: read the fixture, decode it,
// classify the outcome, print the result, and exit 0 only if the
// outcome satisfies the expectation. Without arguments it checks the
// default fixture path, matching the check this tool grew out of.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [fixture]",
		Short: "Run a single fixture validation check",
		Long: fmt.Sprintf(`Check that the TOML decoder rejects a malformed fixture file.

The fixture defaults to %q when no path is given. Use --expect=valid to
invert the check for fixtures that must parse cleanly, and --engine to
select which decoder library is under test.

Exit codes:
  0  the outcome matched the expectation
  1  the fixture was wrongly accepted, or an unexpected error occurred`, checker.DefaultFixturePath),
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().StringVar(&checkEngine, "engine", engine.DefaultName,
		fmt.Sprintf("Decoder engine to test (valid: %s, %s)", engine.DefaultName, engine.BurntSushiName))
	cmd.Flags().StringVar(&checkExpect, "expect", string(model.ExpectInvalid),
		"Expected fixture quality: 'invalid' requires a decode error, 'valid' requires success")

	return cmd
}

// runCheck executes the check command. Flag problems surface as plain
// errors (cobra prints them via Execute); a check that ran and failed
// returns the silent exitError sentinel because its result has already
// been rendered.
func runCheck(cmd *cobra.Command, args []string) error {
	eng, err := engine.ForName(checkEngine)
	if err != nil {
		return err
	}
	expect, err := model.ParseExpectation(checkExpect)
	if err != nil {
		return err
	}

	path := checker.DefaultFixturePath
	if len(args) == 1 {
		path = args[0]
	}

	VerboseLog("checking fixture %s (engine=%s, expect=%s)", path, eng.Name(), expect)

	result := checker.Run(path, eng, expect)

	if IsJSONOutput() {
		if err := report.RenderJSON(os.Stdout, result); err != nil {
			return err
		}
	} else {
		report.Render(os.Stdout, result)
	}

	if code := report.ExitFor(result); code != model.ExitSuccess {
		return &exitError{code: code}
	}
	return nil
}

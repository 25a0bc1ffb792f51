package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tomlcheck/internal/model"
	"github.com/shinji-kodama/tomlcheck/internal/report"
	"github.com/shinji-kodama/tomlcheck/internal/suite"
)

// NewSuiteCommand creates the `suite` subcommand.
//
// suite runs every check listed in a suite definition file (JSONC or
// YAML) and prints a per-check result plus an aggregate summary. The
// whole suite always runs; failures are counted, not short-circuited.
func NewSuiteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suite <file>",
		Short: "Run all fixture checks listed in a suite file",
		Long: `Run every validation check described by a suite definition file.

The file format is chosen by extension: .jsonc/.json (JSON with
comments) or .yaml/.yml. Fixture paths inside the suite are resolved
relative to the suite file's directory.

Exit codes:
  0  every check passed
  1  at least one check failed
  2  the suite file itself was unreadable or invalid`,
		Args: cobra.ExactArgs(1),
		RunE: runSuite,
	}
}

// runSuite executes the suite command. Suite definition problems are
// CLIErrors carrying ExitSuiteInvalid; failing checks return the
// silent exitError sentinel after the summary has been printed.
func runSuite(cmd *cobra.Command, args []string) error {
	suitePath := args[0]

	def, err := suite.Load(suitePath)
	if err != nil {
		return err
	}

	VerboseLog("running %d checks from %s", len(def.Checks), suitePath)

	summary := suite.RunSuite(def, filepath.Dir(suitePath))

	if IsJSONOutput() {
		if err := report.RenderJSON(os.Stdout, summary); err != nil {
			return err
		}
	} else {
		for _, res := range summary.Results {
			fmt.Fprintf(os.Stdout, "%s: ", res.FixturePath)
			report.Render(os.Stdout, res)
		}
		fmt.Fprintln(os.Stdout)
		report.RenderSummary(os.Stdout, summary.Passed, summary.Failed)
	}

	if summary.Failed > 0 {
		return &exitError{code: model.ExitCheckFailed}
	}
	return nil
}

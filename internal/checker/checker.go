package checker

import (
	"os"

	"github.com/shinji-kodama/tomlcheck/internal/engine"
	"github.com/shinji-kodama/tomlcheck/internal/model"
)

// DefaultFixturePath is the fixture the check command operates on when
// no path is given. The file is expected to contain deliberately
// malformed TOML, such as a string value missing its closing quote.
const DefaultFixturePath = ".secrets.toml.test"

// Run executes a single validation check against the fixture at path
// using the given engine, and classifies the outcome.
//
// Classification:
//   - the fixture cannot be read → OutcomeUnexpectedError. File-system
//     failures are classified before any decode happens, so an I/O
//     error can never be mistaken for a caught decode error.
//   - the engine accepts the bytes → OutcomeUnexpectedSuccess.
//   - the engine rejects the bytes with its syntax-class error →
//     OutcomeCaught, with the decoder's message as the detail.
//   - the engine fails in any other way → OutcomeUnexpectedError.
//
// Run never returns an error: every branch is an outcome. Whether the
// outcome is acceptable is a question for CheckResult.Passed, which
// compares it against the expectation.
func Run(path string, eng engine.Engine, expect model.Expectation) model.CheckResult {
	result := model.CheckResult{
		FixturePath: path,
		Engine:      eng.Name(),
		Expectation: expect,
	}

	// os.ReadFile handles the open-read-close lifecycle in a single
	// call, so the file handle is released on every path.
	data, err := os.ReadFile(path)
	if err != nil {
		result.Outcome = model.OutcomeUnexpectedError
		result.Detail = err.Error()
		return result
	}

	if err := eng.Decode(data); err != nil {
		if eng.IsSyntaxError(err) {
			result.Outcome = model.OutcomeCaught
		} else {
			result.Outcome = model.OutcomeUnexpectedError
		}
		result.Detail = err.Error()
		return result
	}

	result.Outcome = model.OutcomeUnexpectedSuccess
	return result
}

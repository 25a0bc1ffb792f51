package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/tomlcheck/internal/checker"
	"github.com/shinji-kodama/tomlcheck/internal/engine"
	"github.com/shinji-kodama/tomlcheck/internal/model"
)

// Entry describes a single check within a suite definition.
type Entry struct {
	// Path is the fixture file to check, relative to the suite file's
	// directory (absolute paths are used as-is).
	Path string `json:"path" yaml:"path"`

	// Expect is the expectation for this fixture: "invalid" (default)
	// or "valid".
	Expect string `json:"expect,omitempty" yaml:"expect,omitempty"`

	// Engine selects the decoder engine; empty selects the default.
	Engine string `json:"engine,omitempty" yaml:"engine,omitempty"`
}

// Definition is the parsed form of a suite file.
type Definition struct {
	// Checks lists the checks to run, in order. Must not be empty.
	Checks []Entry `json:"checks" yaml:"checks"`
}

// Summary aggregates the results of a suite run.
type Summary struct {
	// Results holds one CheckResult per suite entry, in suite order.
	Results []model.CheckResult `json:"results"`

	// Passed counts results whose outcome satisfied their expectation.
	Passed int `json:"passed"`

	// Failed counts the rest.
	Failed int `json:"failed"`
}

// Load reads and parses a suite definition file. The format is chosen
// by extension: .jsonc and .json are parsed as JSONC (comments and
// trailing commas allowed), .yaml and .yml as YAML.
//
// All failures return a CLIError with ExitSuiteInvalid, since a
// broken suite definition is a configuration problem, not a failing
// check.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitSuiteInvalid,
			fmt.Sprintf("failed to read suite file %s", path),
			err,
		)
	}

	var def Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonc", ".json":
		// Strip JSONC comments and trailing commas before handing the
		// bytes to encoding/json.
		if err := json.Unmarshal(jsonc.ToJSON(data), &def); err != nil {
			return nil, model.WrapCLIError(
				model.ExitSuiteInvalid,
				fmt.Sprintf("failed to parse suite file %s", path),
				err,
			)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, model.WrapCLIError(
				model.ExitSuiteInvalid,
				fmt.Sprintf("failed to parse suite file %s", path),
				err,
			)
		}
	default:
		return nil, model.NewCLIError(
			model.ExitSuiteInvalid,
			fmt.Sprintf("unsupported suite file extension %q (valid: .jsonc, .json, .yaml, .yml)", filepath.Ext(path)),
		)
	}

	if err := validate(&def); err != nil {
		return nil, model.WrapCLIError(
			model.ExitSuiteInvalid,
			fmt.Sprintf("invalid suite file %s", path),
			err,
		)
	}

	return &def, nil
}

// validate checks the structural constraints of a suite definition:
// at least one check, every check has a path, and any expectation or
// engine name resolves.
func validate(def *Definition) error {
	if len(def.Checks) == 0 {
		return fmt.Errorf("suite defines no checks")
	}

	for i, entry := range def.Checks {
		if entry.Path == "" {
			return fmt.Errorf("check %d: path must not be empty", i)
		}
		if entry.Expect != "" {
			if _, err := model.ParseExpectation(entry.Expect); err != nil {
				return fmt.Errorf("check %d (%s): %w", i, entry.Path, err)
			}
		}
		if _, err := engine.ForName(entry.Engine); err != nil {
			return fmt.Errorf("check %d (%s): %w", i, entry.Path, err)
		}
	}
	return nil
}

// RunSuite executes every check in the definition, resolving relative
// fixture paths against baseDir (normally the suite file's directory).
// The suite always runs to completion; individual failures are counted,
// not short-circuited, so CI output shows every broken fixture at once.
func RunSuite(def *Definition, baseDir string) Summary {
	var summary Summary

	for _, entry := range def.Checks {
		path := entry.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		expect := model.ExpectInvalid
		if entry.Expect != "" {
			// Already validated in Load; parse cannot fail here.
			expect, _ = model.ParseExpectation(entry.Expect)
		}
		eng, _ := engine.ForName(entry.Engine)

		res := checker.Run(path, eng, expect)
		summary.Results = append(summary.Results, res)
		if res.Passed() {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	return summary
}

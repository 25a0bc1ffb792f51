package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/tomlcheck/internal/model"
)

// TestRender verifies the message block for each outcome bucket. The
// headline phrases are a CI contract: scripts grep for them, so the
// exact wording is asserted.
func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		res      model.CheckResult
		contains []string
	}{
		{
			name: "caught decode error",
			res: model.CheckResult{
				Expectation: model.ExpectInvalid,
				Outcome:     model.OutcomeCaught,
				Detail:      "toml: unterminated string",
			},
			contains: []string{
				"TOML validation correctly caught error",
				"toml: unterminated string",
			},
		},
		{
			name: "malformed input accepted",
			res: model.CheckResult{
				Expectation: model.ExpectInvalid,
				Outcome:     model.OutcomeUnexpectedSuccess,
			},
			contains: []string{
				"ERROR: TOML validation should have failed!",
				"Missing closing quote was not detected!",
			},
		},
		{
			name: "unexpected error",
			res: model.CheckResult{
				Expectation: model.ExpectInvalid,
				Outcome:     model.OutcomeUnexpectedError,
				Detail:      "open .secrets.toml.test: no such file or directory",
			},
			contains: []string{
				"Unexpected error:",
				"no such file or directory",
			},
		},
		{
			name: "valid expectation satisfied",
			res: model.CheckResult{
				Expectation: model.ExpectValid,
				Outcome:     model.OutcomeUnexpectedSuccess,
			},
			contains: []string{"TOML parsed successfully"},
		},
		{
			name: "valid expectation violated",
			res: model.CheckResult{
				Expectation: model.ExpectValid,
				Outcome:     model.OutcomeCaught,
				Detail:      "toml: invalid character",
			},
			contains: []string{
				"ERROR: TOML validation failed unexpectedly:",
				"toml: invalid character",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Render(&buf, tt.res)

			out := buf.String()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

// TestExitFor verifies the exit-code contract: 0 only when the check
// passed, 1 for both failure modes.
func TestExitFor(t *testing.T) {
	tests := []struct {
		name string
		res  model.CheckResult
		want model.ExitCode
	}{
		{
			name: "caught malformed input exits 0",
			res:  model.CheckResult{Expectation: model.ExpectInvalid, Outcome: model.OutcomeCaught},
			want: model.ExitSuccess,
		},
		{
			name: "accepted malformed input exits 1",
			res:  model.CheckResult{Expectation: model.ExpectInvalid, Outcome: model.OutcomeUnexpectedSuccess},
			want: model.ExitCheckFailed,
		},
		{
			name: "unexpected error exits 1",
			res:  model.CheckResult{Expectation: model.ExpectInvalid, Outcome: model.OutcomeUnexpectedError},
			want: model.ExitCheckFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitFor(tt.res))
		})
	}
}

// TestRenderSummary verifies the aggregate suite line for the all-pass
// and partial-failure cases.
func TestRenderSummary(t *testing.T) {
	t.Run("all passed", func(t *testing.T) {
		var buf bytes.Buffer
		RenderSummary(&buf, 3, 0)
		assert.Contains(t, buf.String(), "3/3 checks passed")
	})

	t.Run("some failed", func(t *testing.T) {
		var buf bytes.Buffer
		RenderSummary(&buf, 2, 1)
		assert.Contains(t, buf.String(), "2/3 checks passed")
		assert.Contains(t, buf.String(), "1 failed")
	})
}

// TestRenderJSON verifies that a check result round-trips through the
// JSON output mode.
func TestRenderJSON(t *testing.T) {
	res := model.CheckResult{
		FixturePath: ".secrets.toml.test",
		Engine:      "gotoml",
		Expectation: model.ExpectInvalid,
		Outcome:     model.OutcomeCaught,
		Detail:      "toml: unterminated string",
	}

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, res))

	var decoded model.CheckResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, res, decoded)
}

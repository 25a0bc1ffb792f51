package model

import (
	"fmt"
	"strings"
)

// Outcome represents the result bucket of a single validation check.
// Every check ends in exactly one of the three states:
//
//	decode fails with a syntax-class error → OutcomeCaught
//	decode succeeds                        → OutcomeUnexpectedSuccess
//	anything else (I/O, non-syntax error)  → OutcomeUnexpectedError
type Outcome string

const (
	// OutcomeCaught indicates the decoder rejected the fixture with a
	// syntax-class decode error. For an expect=invalid check this is
	// the passing state.
	OutcomeCaught Outcome = "caught"

	// OutcomeUnexpectedSuccess indicates the decoder accepted the
	// fixture. For an expect=invalid check this means the validation
	// target has a gap: the malformed input was not detected.
	OutcomeUnexpectedSuccess Outcome = "unexpected-success"

	// OutcomeUnexpectedError indicates a failure outside the decoder's
	// syntax error class, typically an I/O problem such as a missing
	// fixture file or a permission error.
	OutcomeUnexpectedError Outcome = "unexpected-error"
)

// String returns the string representation of Outcome.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and reports.
func (o Outcome) String() string {
	return string(o)
}

// IsValid checks whether the Outcome value is one of the predefined
// valid buckets.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeCaught, OutcomeUnexpectedSuccess, OutcomeUnexpectedError:
		return true
	default:
		return false
	}
}

// ParseOutcome converts a string to an Outcome.
// Returns an error if the string does not match any valid bucket.
func ParseOutcome(s string) (Outcome, error) {
	outcome := Outcome(strings.ToLower(s))
	if !outcome.IsValid() {
		return "", fmt.Errorf("invalid outcome: %q (valid: caught, unexpected-success, unexpected-error)", s)
	}
	return outcome, nil
}

// Expectation declares what a check requires of its fixture.
// The default is ExpectInvalid: the fixture is deliberately malformed
// and the decoder must reject it. ExpectValid inverts the check for
// fixtures that must parse cleanly.
type Expectation string

const (
	// ExpectInvalid requires the decoder to reject the fixture with a
	// syntax-class error. This is the default and the reason this tool
	// exists.
	ExpectInvalid Expectation = "invalid"

	// ExpectValid requires the decoder to accept the fixture.
	ExpectValid Expectation = "valid"
)

// String returns the string representation of Expectation.
func (e Expectation) String() string {
	return string(e)
}

// IsValid checks whether the Expectation value is one of the
// predefined valid expectations.
func (e Expectation) IsValid() bool {
	switch e {
	case ExpectInvalid, ExpectValid:
		return true
	default:
		return false
	}
}

// ParseExpectation converts a string to an Expectation.
// Returns an error if the string does not match any valid expectation.
func ParseExpectation(s string) (Expectation, error) {
	expect := Expectation(strings.ToLower(s))
	if !expect.IsValid() {
		return "", fmt.Errorf("invalid expectation: %q (valid: invalid, valid)", s)
	}
	return expect, nil
}

// CheckResult holds everything a single validation check produced.
// It is the unit of reporting: the report package turns one of these
// into the glyph-prefixed human messages or a JSON object, and the
// suite package aggregates them into a Summary.
type CheckResult struct {
	// FixturePath is the path of the fixture file that was checked.
	FixturePath string `json:"fixturePath"`

	// Engine is the name of the decoder engine that ran the check
	// (e.g., "gotoml", "burntsushi").
	Engine string `json:"engine"`

	// Expectation is what the check required of the fixture.
	Expectation Expectation `json:"expectation"`

	// Outcome is the bucket the check ended in.
	Outcome Outcome `json:"outcome"`

	// Detail carries the decoder's error text for OutcomeCaught, the
	// I/O error text for OutcomeUnexpectedError, and is empty for
	// OutcomeUnexpectedSuccess.
	Detail string `json:"detail,omitempty"`
}

// Passed reports whether the outcome satisfies the expectation.
// An expect=invalid check passes only when the decoder caught the
// malformed input; an expect=valid check passes only when the decoder
// accepted it. OutcomeUnexpectedError never passes.
func (r *CheckResult) Passed() bool {
	switch r.Expectation {
	case ExpectValid:
		return r.Outcome == OutcomeUnexpectedSuccess
	default:
		return r.Outcome == OutcomeCaught
	}
}

// ExitCode defines the process exit codes of the tomlcheck binary.
// These codes allow scripts and CI systems to programmatically
// determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates every check passed: the malformed input
	// was correctly rejected (or, for expect=valid, correctly accepted).
	ExitSuccess ExitCode = 0

	// ExitCheckFailed indicates at least one check did not pass.
	// This covers both the decoder accepting malformed input and an
	// unexpected error kind (missing fixture, I/O failure).
	ExitCheckFailed ExitCode = 1

	// ExitSuiteInvalid indicates the suite definition file itself was
	// unreadable or invalid, as opposed to its checks failing.
	ExitSuiteInvalid ExitCode = 2
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

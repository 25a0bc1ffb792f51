// Package model defines the domain types for the tomlcheck CLI.
//
// The central concept is the Outcome: every validation check ends in
// exactly one of three buckets. Either the decoder caught the malformed
// input (caught), the decoder accepted input it should have rejected
// (unexpected-success), or something other than a decode error occurred
// (unexpected-error). Outcomes are compared against an Expectation to
// decide whether a check passed, and CLIError carries the process
// exit code from wherever the failure happened up to the CLI layer.
package model

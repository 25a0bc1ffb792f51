// Package report renders check results for humans and machines.
//
// The human format is the three glyph-prefixed message blocks, one per
// outcome bucket, written for CI log consumption. The machine format
// is indented JSON, selected with the --json flag. Exit-code mapping
// lives here too, next to the messages it accompanies.
package report

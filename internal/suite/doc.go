// Package suite runs a set of validation checks described by a suite
// definition file.
//
// Suite files come in two formats, chosen by file extension: JSONC
// (JSON with comments, the comments stripped with tidwall/jsonc before
// parsing) and YAML. Both describe the same schema: a list of checks,
// each naming a fixture path with an optional expectation and engine.
// Fixture paths are resolved relative to the suite file's directory so
// a suite can live next to its fixtures and be run from anywhere.
package suite

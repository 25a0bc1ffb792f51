// Package engine wraps the TOML decoder libraries under test behind a
// common interface.
//
// Each library reports malformed input through its own error type:
// pelletier/go-toml/v2 returns a *toml.DecodeError, BurntSushi/toml
// returns a toml.ParseError. The checker needs to distinguish these
// syntax-class errors from everything else (I/O failures, unrelated
// errors) to classify a check into the right outcome bucket, so each
// Engine owns both the decode call and the classification of its own
// errors.
package engine

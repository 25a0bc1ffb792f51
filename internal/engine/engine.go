package engine

import (
	"errors"
	"fmt"

	burntsushi "github.com/BurntSushi/toml"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Engine is a TOML decoder under test. Implementations decode raw
// bytes into an untyped document and classify their own error values,
// because each decoder library exposes a different error hierarchy
// for syntax problems.
type Engine interface {
	// Name returns the engine identifier used in CLI flags, suite
	// files, and reports.
	Name() string

	// Decode parses data as a TOML document. A nil return means the
	// decoder accepted the input.
	Decode(data []byte) error

	// IsSyntaxError reports whether err is this decoder's
	// syntax-class decode error, as opposed to any other failure.
	IsSyntaxError(err error) bool
}

// Engine names accepted by ForName. DefaultName matches the decoder
// the original validation used.
const (
	DefaultName    = "gotoml"
	BurntSushiName = "burntsushi"
)

// ForName resolves an engine identifier to an Engine. An empty name
// selects the default engine.
func ForName(name string) (Engine, error) {
	switch name {
	case "", DefaultName:
		return GoTOML{}, nil
	case BurntSushiName:
		return BurntSushi{}, nil
	default:
		return nil, fmt.Errorf("unknown engine %q (valid: %s, %s)", name, DefaultName, BurntSushiName)
	}
}

// Names returns the identifiers of all available engines, default first.
func Names() []string {
	return []string{DefaultName, BurntSushiName}
}

// GoTOML decodes with github.com/pelletier/go-toml/v2.
type GoTOML struct{}

// Name implements Engine.
func (GoTOML) Name() string { return DefaultName }

// Decode implements Engine. The target is an untyped map so that any
// well-formed document is accepted regardless of its schema; only the
// grammar is under test.
func (GoTOML) Decode(data []byte) error {
	var doc map[string]any
	return gotoml.Unmarshal(data, &doc)
}

// IsSyntaxError implements Engine. go-toml/v2 reports malformed input
// as a *toml.DecodeError, which carries the offending range and a
// human-readable description.
func (GoTOML) IsSyntaxError(err error) bool {
	var decodeErr *gotoml.DecodeError
	return errors.As(err, &decodeErr)
}

// BurntSushi decodes with github.com/BurntSushi/toml.
type BurntSushi struct{}

// Name implements Engine.
func (BurntSushi) Name() string { return BurntSushiName }

// Decode implements Engine.
func (BurntSushi) Decode(data []byte) error {
	var doc map[string]any
	return burntsushi.Unmarshal(data, &doc)
}

// IsSyntaxError implements Engine. BurntSushi/toml reports malformed
// input as a toml.ParseError value.
func (BurntSushi) IsSyntaxError(err error) bool {
	var parseErr burntsushi.ParseError
	return errors.As(err, &parseErr)
}

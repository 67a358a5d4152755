package ecfg

import "errors"

// ErrInvalidGrammarText indicates ECFG text violating the documented
// one-production-per-variable line format.
var ErrInvalidGrammarText = errors.New("ecfg: invalid grammar text")

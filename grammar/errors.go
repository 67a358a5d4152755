package grammar

import "errors"

// Sentinel errors for grammar package operations.
var (
	// ErrInvalidGrammarText indicates grammar text violating the
	// documented line format (see ParseText).
	ErrInvalidGrammarText = errors.New("grammar: invalid grammar text")

	// ErrUnknownVariable indicates a reference to a Variable absent
	// from the grammar's variable set.
	ErrUnknownVariable = errors.New("grammar: unknown variable")
)

package automaton

import "errors"

// Sentinel errors for automaton package operations.
var (
	// ErrInvalidRegex indicates malformed regex text (unbalanced parens,
	// dangling operator, empty input to an operator expecting an operand).
	ErrInvalidRegex = errors.New("automaton: invalid regex")

	// ErrUnknownState indicates a State value outside [0, NumStates()).
	ErrUnknownState = errors.New("automaton: unknown state")

	// ErrNoStartState indicates an operation required at least one start
	// state but the automaton has none.
	ErrNoStartState = errors.New("automaton: automaton has no start state")
)

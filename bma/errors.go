package bma

import "errors"

// ErrInvalidGraph indicates a start/final node reference outside the
// graph's node range.
var ErrInvalidGraph = errors.New("bma: invalid graph reference")

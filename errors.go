package combinator

import (
	"errors"
	"fmt"
)

// ContractError signals that the engine is being used incorrectly,
// like reading the value of a failed match or seeking a scanner out
// of its bounds.  It's raised with panic and is never produced by an
// ordinary parse failure.
type ContractError struct {
	Op      string
	Message string
}

// Error returns the human readable representation of a contract error
func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func contractf(op, format string, args ...any) *ContractError {
	return &ContractError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// ActionError is returned by Parse when an action attached to a
// parser returns an error.  It can't be caught by the backtracking
// done in Choice, Optional or the repetitions, so it terminates the
// parse right away.
type ActionError struct {
	Parser string
	Match  Match
	Err    error
}

// Error returns the human readable representation of an action error
func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s @ %d..%d", e.Parser, e.Err, e.Match.Offset, e.Match.End())
}

func (e *ActionError) Unwrap() error { return e.Err }

func isActionError(err error) bool {
	var ae *ActionError
	return errors.As(err, &ae)
}

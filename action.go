package combinator

// Action is called with the match of a parser every time it
// succeeds.  Returning an error aborts the parse: the error is
// returned by the outermost Parse call wrapped in an *ActionError.
type Action func(m Match) error

// TypedAction is an action that also receives a value chosen when the
// action was created
type TypedAction[T any] func(m Match, value T) error

// Typed binds `value` to `fn`, returning a plain action
func Typed[T any](value T, fn TypedAction[T]) Action {
	return func(m Match) error { return fn(m, value) }
}

// AppendTo returns an action that appends the value of each match to
// `list`
func AppendTo(list *[]string) Action {
	return func(m Match) error {
		*list = append(*list, m.Value())
		return nil
	}
}

// AssignTo returns an action that stores the value of the match in
// `dst`
func AssignTo(dst *string) Action {
	return func(m Match) error {
		*dst = m.Value()
		return nil
	}
}

// Raise returns an action that aborts the parse with `err` as soon as
// the parser it's attached to succeeds
func Raise(err error) Action {
	return func(Match) error { return err }
}

package grammars

import (
	"fmt"
	"strconv"

	c "github.com/clarete/combinator"
)

// Arithmetic matches sums and subtractions of integers and real
// numbers, with parenthesized groups:
//
//	expression := term (('+' / '-') term)*
//	term       := group / number / integer
//	group      := '(' expression ')'
//	number     := integer '.' integer
//	integer    := [0-9]+
func Arithmetic() *Grammar {
	return arithmetic(nil)
}

type evaluator struct {
	values []float64
}

func (e *evaluator) push(v float64) { e.values = append(e.values, v) }

func (e *evaluator) pop() float64 {
	v := e.values[len(e.values)-1]
	e.values = e.values[:len(e.values)-1]
	return v
}

func pushNumber(m c.Match, e *evaluator) error {
	v, err := strconv.ParseFloat(m.Value(), 64)
	if err != nil {
		return err
	}
	e.push(v)
	return nil
}

// reduce combines the two values on top of the stack with the
// operator the operation match starts with
func reduce(m c.Match, e *evaluator) error {
	op := []rune(m.Value())[0]
	b, a := e.pop(), e.pop()
	switch op {
	case '+':
		e.push(a + b)
	case '-':
		e.push(a - b)
	default:
		return fmt.Errorf("unknown operator `%c`", op)
	}
	return nil
}

func arithmetic(e *evaluator) *Grammar {
	var (
		expression = c.NewRule("expression")
		term       = c.NewRule("term")
		group      = c.NewRule("group")
		number     = c.NewRule("number")
		integer    = c.NewRule("integer")
		operator   = c.Choice(c.Lit('+'), c.Lit('-'))
		operation  = c.Seq(operator, term)
	)

	integer.Set(c.OneOrMore(c.Range('0', '9')))
	number.Set(c.Seq(integer, c.Lit('.'), integer))
	group.Set(c.Seq(c.Lit('('), expression, c.Lit(')')))
	expression.Set(c.Seq(term, c.ZeroOrMore(operation)))

	if e == nil {
		term.Set(c.Choice(group, number, integer))
	} else {
		term.Set(c.Choice(group, c.Do(number, c.Typed(e, pushNumber)), c.Do(integer, c.Typed(e, pushNumber))))
		operation.Act(c.Typed(e, reduce))
	}

	return &Grammar{
		Name:        "arithmetic",
		Description: "sums and subtractions with parenthesized groups",
		Root:        expression,
		Rules:       []*c.Rule{expression, term, group, number, integer},
	}
}

// Evaluate computes the value of the arithmetic expression `input`.
// The second return value is false when `input` isn't entirely an
// expression.
func Evaluate(input string) (float64, bool, error) {
	e := &evaluator{}
	g := arithmetic(e)
	m, err := c.Seq(g.Root, c.End()).Parse(c.NewScanner(input))
	if err != nil || !m.Success {
		return 0, false, err
	}
	return e.pop(), true, nil
}

package propform

import (
	"errors"
	"fmt"

	"github.com/CodeInCachemire/sat-solver-full-app/vartable"
)

// structuralError reports a malformed postfix program: an operator
// with too few operands on the stack, or leftover operands at end of
// input. The other hard-error kind, lexical, surfaces as whatever
// plain error vartable.Intern returns.
type structuralError struct {
	msg string
}

func (e *structuralError) Error() string { return e.msg }

var errNoTokens = errors.New("propform: no tokens in input")

func structuralf(format string, args ...any) error {
	return &structuralError{msg: fmt.Sprintf(format, args...)}
}

// operator classifies a token as one of the four binary connectives,
// unary negation, or (by elimination) a variable name.
type operator int

const (
	opVar operator = iota
	opNot
	opAnd
	opOr
	opImplies
	opEquiv
)

func classify(tok string) operator {
	switch tok {
	case "!":
		return opNot
	case "&&":
		return opAnd
	case "||":
		return opOr
	case "=>":
		return opImplies
	case "<=>":
		return opEquiv
	default:
		return opVar
	}
}

// Parse runs the postfix stack machine over the tokens produced by s,
// interning variable names into vt. A well-formed input leaves exactly
// one formula on the stack; anything else (operator starved of
// operands, leftover operands, no tokens at all) is a structural
// error. An invalid variable name (empty, non-alphanumeric) surfaces
// as whatever error vartable.Intern returns.
func Parse(s *Scanner, vt *vartable.Table) (*Node, error) {
	var stack []*Node
	tokenCount := 0

	for {
		tok, ok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		tokenCount++

		switch classify(tok) {
		case opNot:
			if len(stack) < 1 {
				return nil, structuralf("operator %q: need 1 operand, have %d", tok, len(stack))
			}
			operand := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack = append(stack, NewNot(operand))

		case opAnd, opOr, opImplies, opEquiv:
			if len(stack) < 2 {
				return nil, structuralf("operator %q: need 2 operands, have %d", tok, len(stack))
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, newBinary(classify(tok), left, right))

		default: // opVar
			id, err := vt.Intern(tok)
			if err != nil {
				return nil, err
			}
			stack = append(stack, NewVar(id))
		}
	}

	if tokenCount == 0 {
		return nil, errNoTokens
	}
	if len(stack) != 1 {
		return nil, structuralf("end of input with %d formulas on the stack, expected 1", len(stack))
	}
	return stack[0], nil
}

func newBinary(op operator, left, right *Node) *Node {
	switch op {
	case opAnd:
		return NewAnd(left, right)
	case opOr:
		return NewOr(left, right)
	case opImplies:
		return NewImplies(left, right)
	case opEquiv:
		return NewEquiv(left, right)
	default:
		panic("propform: newBinary called with a non-binary operator")
	}
}

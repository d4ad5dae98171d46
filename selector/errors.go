package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicatePart is returned when element, id or pseudo-element is
	// appended a second time in the same chain.
	ErrDuplicatePart = errors.New("duplicate selector part")
	// ErrOrder is returned when a part is appended after a part of higher rank.
	ErrOrder = errors.New("selector part out of order")
	// ErrInvalidCombinator is returned by Combine for unknown combinator tokens.
	ErrInvalidCombinator = errors.New("invalid combinator")
	ErrUnknownKind       = errors.New("unknown selector part kind")
	ErrSyntax            = errors.New("selector syntax error")
)

// DuplicatePartError reports a second occurrence of a singleton kind.
type DuplicatePartError struct {
	Kind  Kind
	Value string
}

func (e *DuplicatePartError) Error() string {
	return fmt.Sprintf("%s: %s %q already present in selector", ErrDuplicatePart.Error(), e.Kind, e.Value)
}

func (e *DuplicatePartError) Unwrap() error { return ErrDuplicatePart }

// OrderError reports a part whose rank is lower than the previous part's.
type OrderError struct {
	Kind  Kind
	After Kind
	Value string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s: %s %q cannot follow %s", ErrOrder.Error(), e.Kind, e.Value, e.After)
}

func (e *OrderError) Unwrap() error { return ErrOrder }

// CombinatorError reports a token outside of the recognized combinators.
type CombinatorError struct {
	Combinator string
}

func (e *CombinatorError) Error() string {
	return fmt.Sprintf("%s %q, expected one of \" \", \"+\", \"~\", \">\"", ErrInvalidCombinator.Error(), e.Combinator)
}

func (e *CombinatorError) Unwrap() error { return ErrInvalidCombinator }

// SyntaxError reports selector text Parse could not understand.
type SyntaxError struct {
	Text   string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d in %q: %s", ErrSyntax.Error(), e.Offset, e.Text, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Package selector composes CSS selector strings from parts and validates
// their syntactic order.
//
// Builder values are immutable: every method returns a new value derived from
// the receiver and never changes the receiver, so a failing call leaves the
// receiver usable and builders may be shared between goroutines freely.
//
//	b, err := selector.New().Element("div")
//	if err == nil {
//		b, err = b.ID("main")
//	}
//	fmt.Println(b) // div#main
package selector

import (
	"fmt"
	"slices"
)

// Builder accumulates selector text. The zero value is an empty builder
// ready to use.
type Builder struct {
	text  string
	last  Kind   // rank of the most recently appended kind
	used  uint8  // bit per singleton kind already present
	parts []Part // parts appended since the chain started, never shared for writing
}

// New returns an empty builder.
func New() Builder {
	return Builder{}
}

// Element appends a type selector (or "*").
func (b Builder) Element(value string) (Builder, error) {
	return b.Append(KindElement, value)
}

// ID appends an id selector: #value.
func (b Builder) ID(value string) (Builder, error) {
	return b.Append(KindID, value)
}

// Class appends a class selector: .value.
func (b Builder) Class(value string) (Builder, error) {
	return b.Append(KindClass, value)
}

// Attribute appends an attribute selector: [value]. Value is not escaped.
func (b Builder) Attribute(value string) (Builder, error) {
	return b.Append(KindAttribute, value)
}

// PseudoClass appends :value.
func (b Builder) PseudoClass(value string) (Builder, error) {
	return b.Append(KindPseudoClass, value)
}

// PseudoElement appends ::value.
func (b Builder) PseudoElement(value string) (Builder, error) {
	return b.Append(KindPseudoElement, value)
}

// Append adds a part of the given kind. Uniqueness is checked before order,
// so a repeated id after a class is reported as a duplicate.
func (b Builder) Append(kind Kind, value string) (Builder, error) {
	if !kind.IsValid() {
		return Builder{}, fmt.Errorf("%s: %w", kind, ErrUnknownKind)
	}
	bit := uint8(1) << uint(kind)
	if kind.Singleton() && b.used&bit != 0 {
		return Builder{}, &DuplicatePartError{Kind: kind, Value: value}
	}
	if kind.Rank() < b.last.Rank() {
		return Builder{}, &OrderError{Kind: kind, After: b.last, Value: value}
	}

	next := Builder{
		text:  kind.render(b.text, value),
		last:  kind,
		used:  b.used,
		parts: append(slices.Clip(b.parts), Part{Kind: kind, Value: value}),
	}
	if kind.Singleton() {
		next.used |= bit
	}
	return next, nil
}

// String returns the selector text built so far.
func (b Builder) String() string {
	return b.text
}

// IsEmpty reports whether nothing has been appended or combined yet.
func (b Builder) IsEmpty() bool {
	return len(b.text) == 0
}

// Parts returns the parts appended since the chain started. After Combine the
// chain restarts, so the parts of combined operands are not included.
func (b Builder) Parts() []Part {
	return slices.Clone(b.parts)
}

// Has reports whether a part of the given kind is present in the current chain.
func (b Builder) Has(kind Kind) bool {
	return slices.ContainsFunc(b.parts, func(p Part) bool { return p.Kind == kind })
}

// Build appends parts in order to an empty builder.
func Build(parts ...Part) (Builder, error) {
	var b Builder
	for i, p := range parts {
		next, err := b.Append(p.Kind, p.Value)
		if err != nil {
			return Builder{}, fmt.Errorf("part %d: %w", i, err)
		}
		b = next
	}
	return b, nil
}

package selector

import (
	"fmt"
	"strings"
)

// Kind identifies one atomic fragment of a compound selector. Values are
// declared in the order parts must appear, so a kind's rank is its value.
type Kind int

const (
	KindElement       Kind = iota // div, *
	KindID                        // #main
	KindClass                     // .active
	KindAttribute                 // [href$=".png"]
	KindPseudoClass               // :hover
	KindPseudoElement             // ::before
)

var kindNames = []string{
	KindElement:       "element",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudo-class",
	KindPseudoElement: "pseudo-element",
}

// String returns the name of the kind as accepted by ParseKind.
func (k Kind) String() string {
	if k.IsValid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k >= KindElement && k <= KindPseudoElement
}

// Rank is the required relative position of the kind inside one chain.
func (k Kind) Rank() int {
	return int(k)
}

// Singleton reports whether the kind may appear at most once in a chain.
func (k Kind) Singleton() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

// render appends value to prev using the kind's syntax.
func (k Kind) render(prev, value string) string {
	switch k {
	case KindID:
		return prev + "#" + value
	case KindClass:
		return prev + "." + value
	case KindAttribute:
		return prev + "[" + value + "]"
	case KindPseudoClass:
		return prev + ":" + value
	case KindPseudoElement:
		return prev + "::" + value
	default:
		return prev + value
	}
}

// KindNames returns names of all kinds in rank order.
func KindNames() []string {
	out := make([]string, len(kindNames))
	copy(out, kindNames)
	return out
}

// ParseKind converts a kind name (case insensitive) into a Kind. Both
// "pseudo-class" and "pseudoClass" spellings are accepted.
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.ReplaceAll(norm, "_", "-")
	switch norm {
	case "pseudoclass":
		norm = "pseudo-class"
	case "pseudoelement":
		norm = "pseudo-element"
	}
	for i, n := range kindNames {
		if n == norm {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%q is not a valid selector part kind, try [%s]: %w", name, strings.Join(kindNames, ", "), ErrUnknownKind)
}

// Part is a single kind/value pair of a selector chain.
type Part struct {
	Kind  Kind
	Value string
}

// String renders the part on its own.
func (p Part) String() string {
	return p.Kind.render("", p.Value)
}

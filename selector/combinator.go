package selector

// Combinator joins two complex selectors.
type Combinator string

const (
	Descendant Combinator = " "
	Adjacent   Combinator = "+"
	Sibling    Combinator = "~"
	Child      Combinator = ">"
)

// Valid reports whether c is one of the four recognized tokens.
func (c Combinator) Valid() bool {
	switch c {
	case Descendant, Adjacent, Sibling, Child:
		return true
	}
	return false
}

// Combine joins two built selectors as "left c right" (the combinator is
// always surrounded by single spaces). The result starts a fresh chain: parts
// appended to it are checked only against parts appended after the combine.
func Combine(left Builder, c Combinator, right Builder) (Builder, error) {
	if !c.Valid() {
		return Builder{}, &CombinatorError{Combinator: string(c)}
	}
	return Builder{text: left.String() + " " + string(c) + " " + right.String()}, nil
}

package selector

import (
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
)

type token struct {
	tt   css.TokenType
	data string
	off  int
}

// tokenize lexes text into tokens dropping comments.
func tokenize(text string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(text))

	var (
		toks []token
		off  int
	)
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, &SyntaxError{Text: text, Offset: off, Msg: err.Error()}
			}
			return toks, nil
		}
		if tt != css.CommentToken {
			toks = append(toks, token{tt: tt, data: string(data), off: off})
		}
		off += len(data)
	}
}

// Parse reads a single selector (no commas) and replays it through the
// builder, so textual selectors obey the same ordering and uniqueness rules
// as built ones. Compound selectors joined by combinators are folded left to
// right with Combine.
func Parse(text string) (Builder, error) {
	toks, err := tokenize(text)
	if err != nil {
		return Builder{}, err
	}
	p := &parser{text: text, toks: toks}
	return p.complex(len(toks))
}

// ParseList reads a comma separated selector group. Every group is parsed
// even when an earlier one fails, all errors are returned combined.
func ParseList(text string) ([]Builder, error) {
	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	var (
		out   []Builder
		errs  error
		start int
		depth int
	)
	p := &parser{text: text, toks: toks}
	for i := 0; i <= len(toks); i++ {
		if i < len(toks) {
			switch toks[i].tt {
			case css.LeftBracketToken, css.LeftParenthesisToken, css.FunctionToken:
				depth++
				continue
			case css.RightBracketToken, css.RightParenthesisToken:
				depth--
				continue
			case css.CommaToken:
				if depth > 0 {
					continue
				}
			default:
				continue
			}
		}
		p.pos = start
		b, err := p.complex(i)
		if err != nil {
			errs = multierr.Append(errs, err)
		} else {
			out = append(out, b)
		}
		start = i + 1
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

type parser struct {
	text string
	toks []token
	pos  int
}

func (p *parser) syntaxErr(off int, msg string) error {
	return &SyntaxError{Text: p.text, Offset: off, Msg: msg}
}

func (p *parser) offset() int {
	if p.pos < len(p.toks) {
		return p.toks[p.pos].off
	}
	return len(p.text)
}

// complex parses tokens [p.pos, end) as one complex selector.
func (p *parser) complex(end int) (Builder, error) {
	var (
		left, cur        Builder
		hasLeft, hasComb bool
		inCompound       bool
		comb             Combinator
		begin            = p.offset()
	)

	endCompound := func() error {
		if hasLeft {
			joined, err := Combine(left, comb, cur)
			if err != nil {
				return err
			}
			left = joined
		} else {
			left, hasLeft = cur, true
		}
		cur, inCompound, hasComb = Builder{}, false, false
		return nil
	}

	for p.pos < end {
		t := p.toks[p.pos]
		switch {
		case t.tt == css.WhitespaceToken:
			p.pos++
			if inCompound {
				if err := endCompound(); err != nil {
					return Builder{}, err
				}
			}
			if hasLeft && !hasComb {
				comb, hasComb = Descendant, true
			}

		case t.tt == css.DelimToken && Combinator(t.data).Valid():
			p.pos++
			if inCompound {
				if err := endCompound(); err != nil {
					return Builder{}, err
				}
			}
			if !hasLeft {
				return Builder{}, p.syntaxErr(t.off, "combinator "+t.data+" has no left operand")
			}
			if hasComb && comb != Descendant {
				return Builder{}, p.syntaxErr(t.off, "combinator "+t.data+" follows "+string(comb))
			}
			comb, hasComb = Combinator(t.data), true

		case t.tt == css.CommaToken:
			return Builder{}, p.syntaxErr(t.off, "unexpected comma, use ParseList for selector groups")

		default:
			part, err := p.part(end)
			if err != nil {
				return Builder{}, err
			}
			if cur, err = cur.Append(part.Kind, part.Value); err != nil {
				return Builder{}, err
			}
			inCompound = true
		}
	}

	if inCompound {
		if err := endCompound(); err != nil {
			return Builder{}, err
		}
	}
	switch {
	case !hasLeft:
		return Builder{}, p.syntaxErr(begin, "empty selector")
	case hasComb && comb != Descendant:
		return Builder{}, p.syntaxErr(p.offset(), "combinator "+string(comb)+" has no right operand")
	}
	return left, nil
}

// part consumes one simple selector starting at p.pos.
func (p *parser) part(end int) (Part, error) {
	t := p.toks[p.pos]
	p.pos++

	switch t.tt {
	case css.IdentToken:
		return Part{Kind: KindElement, Value: t.data}, nil

	case css.HashToken:
		return Part{Kind: KindID, Value: strings.TrimPrefix(t.data, "#")}, nil

	case css.DelimToken:
		switch t.data {
		case "*":
			return Part{Kind: KindElement, Value: t.data}, nil
		case ".":
			if p.pos >= end || p.toks[p.pos].tt != css.IdentToken {
				return Part{}, p.syntaxErr(t.off, "class name expected after '.'")
			}
			p.pos++
			return Part{Kind: KindClass, Value: p.toks[p.pos-1].data}, nil
		}

	case css.LeftBracketToken:
		var sb strings.Builder
		for p.pos < end {
			n := p.toks[p.pos]
			p.pos++
			if n.tt == css.RightBracketToken {
				return Part{Kind: KindAttribute, Value: strings.TrimSpace(sb.String())}, nil
			}
			sb.WriteString(n.data)
		}
		return Part{}, p.syntaxErr(t.off, "unterminated attribute selector")

	case css.ColonToken:
		kind := KindPseudoClass
		if p.pos < end && p.toks[p.pos].tt == css.ColonToken {
			kind = KindPseudoElement
			p.pos++
		}
		name, err := p.pseudoName(t.off, end)
		if err != nil {
			return Part{}, err
		}
		return Part{Kind: kind, Value: name}, nil
	}
	return Part{}, p.syntaxErr(t.off, "unexpected "+t.tt.String()+" "+strings.TrimSpace(t.data))
}

// pseudoName reads an identifier or a function with its argument text.
func (p *parser) pseudoName(off, end int) (string, error) {
	if p.pos >= end {
		return "", p.syntaxErr(off, "pseudo selector name expected")
	}
	t := p.toks[p.pos]
	p.pos++
	switch t.tt {
	case css.IdentToken:
		return t.data, nil
	case css.FunctionToken:
		var sb strings.Builder
		sb.WriteString(t.data)
		depth := 1
		for p.pos < end {
			n := p.toks[p.pos]
			p.pos++
			switch n.tt {
			case css.FunctionToken, css.LeftParenthesisToken:
				depth++
			case css.RightParenthesisToken:
				depth--
			}
			sb.WriteString(n.data)
			if depth == 0 {
				return sb.String(), nil
			}
		}
		return "", p.syntaxErr(t.off, "unterminated "+t.data)
	}
	return "", p.syntaxErr(t.off, "pseudo selector name expected")
}

package css

import (
	"fmt"
	"io"
	"strings"

	"cssb/selector"
)

// Declaration is a single property: value pair in source order.
type Declaration struct {
	Property string
	Value    string
}

// Rule represents a single CSS rule (selector group + declarations).
type Rule struct {
	Selector     string        // Selector group as written, e.g. "h1, h2.title"
	Declarations []Declaration // Declarations in source order
	Index        int           // Position among all rules of the sheet, media rules included
}

// Selectors replays the rule's selector group through the selector builder.
func (r Rule) Selectors() ([]selector.Builder, error) {
	return selector.ParseList(r.Selector)
}

// Get returns the value of the last declaration of the property.
func (r Rule) Get(property string) (string, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == property {
			return r.Declarations[i].Value, true
		}
	}
	return "", false
}

// MediaBlock represents a @media block with its query and nested rules.
type MediaBlock struct {
	Query string
	Rules []Rule
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule, MediaBlock, or Import is non-nil.
type StylesheetItem struct {
	Rule       *Rule
	MediaBlock *MediaBlock
	Import     *string
}

// Stylesheet represents a parsed or composed CSS stylesheet.
type Stylesheet struct {
	Items    []StylesheetItem // All top-level items in source order
	Warnings []string         // Things the parser skipped or could not understand
	Indent   string           // Declaration indent used by WriteTo, two spaces when empty

	rules int
}

// Rules returns rules in source order. Rules nested in @media blocks are
// included only when media is set.
func (s *Stylesheet) Rules(media bool) []Rule {
	var rules []Rule
	for _, item := range s.Items {
		switch {
		case item.Rule != nil:
			rules = append(rules, *item.Rule)
		case item.MediaBlock != nil && media:
			rules = append(rules, item.MediaBlock.Rules...)
		}
	}
	return rules
}

// RulesBySelector returns all top-level rules with exactly this selector group.
func (s *Stylesheet) RulesBySelector(sel string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == sel {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// AddRule appends a top-level rule for a built selector.
func (s *Stylesheet) AddRule(sel selector.Builder, decls ...Declaration) *Rule {
	rule := s.newRule(sel.String(), decls)
	s.Items = append(s.Items, StylesheetItem{Rule: rule})
	return rule
}

func (s *Stylesheet) newRule(sel string, decls []Declaration) *Rule {
	rule := &Rule{Selector: sel, Declarations: decls, Index: s.rules}
	s.rules++
	return rule
}

func (s *Stylesheet) warn(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	indent := s.Indent
	if indent == "" {
		indent = "  "
	}
	ew := &errWriter{w: w}
	for i, item := range s.Items {
		if i > 0 {
			ew.printf("\n")
		}
		switch {
		case item.Import != nil:
			ew.printf("@import url(\"%s\");\n", escapeDoubleQuoted(*item.Import))
		case item.MediaBlock != nil:
			ew.printf("@media %s {\n", item.MediaBlock.Query)
			for j := range item.MediaBlock.Rules {
				if j > 0 {
					ew.printf("\n")
				}
				writeRule(ew, &item.MediaBlock.Rules[j], indent, indent)
			}
			ew.printf("}\n")
		case item.Rule != nil:
			writeRule(ew, item.Rule, "", indent)
		}
		if ew.err != nil {
			break
		}
	}
	return ew.n, ew.err
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeRule(ew *errWriter, rule *Rule, prefix, indent string) {
	ew.printf("%s%s {\n", prefix, rule.Selector)
	for _, d := range rule.Declarations {
		ew.printf("%s%s%s: %s;\n", prefix, indent, d.Property, d.Value)
	}
	ew.printf("%s}\n", prefix)
}

// errWriter remembers the first write error and the number of bytes written.
type errWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	n, err := fmt.Fprintf(ew.w, format, args...)
	ew.n += int64(n)
	ew.err = err
}

// escapeDoubleQuoted escapes a string for use inside CSS double quotes.
func escapeDoubleQuoted(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

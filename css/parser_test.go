package css_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"cssb/css"
)

func newParser(t *testing.T) *css.Parser {
	t.Helper()
	return css.NewParser(zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))))
}

func selectorStrings(t *testing.T, rule css.Rule) []string {
	t.Helper()
	list, err := rule.Selectors()
	if err != nil {
		t.Fatalf("rule %q: unexpected selector error: %v", rule.Selector, err)
	}
	out := make([]string, 0, len(list))
	for _, b := range list {
		out = append(out, b.String())
	}
	return out
}

func TestParser_SimpleRule(t *testing.T) {
	sheet := newParser(t).Parse([]byte(`p.has-dropcap { text-indent: 0; margin: 1em 0 }`))

	rules := sheet.Rules(false)
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}

	rule := rules[0]
	if rule.Selector != "p.has-dropcap" {
		t.Errorf("expected selector 'p.has-dropcap', got '%s'", rule.Selector)
	}
	if len(rule.Declarations) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(rule.Declarations))
	}
	if v, ok := rule.Get("text-indent"); !ok || v != "0" {
		t.Errorf("expected text-indent 0, got %q (%v)", v, ok)
	}
	if v, _ := rule.Get("margin"); v != "1em 0" {
		t.Errorf("expected margin '1em 0', got %q", v)
	}
	if _, ok := rule.Get("color"); ok {
		t.Error("unexpected color property")
	}
}

func TestParser_GroupedSelectors(t *testing.T) {
	sheet := newParser(t).Parse([]byte(`h2, h3.title, h4 { font-size: 120%; }`))

	rules := sheet.Rules(false)
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	got := selectorStrings(t, rules[0])
	want := []string{"h2", "h3.title", "h4"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("expected selectors %v, got %v", want, got)
	}
}

func TestParser_ComplexSelectors(t *testing.T) {
	sheet := newParser(t).Parse([]byte(`
a[href$=".png"]::after { content: "img"; }
div > p:first-child { margin: 0; }
`))

	rules := sheet.Rules(false)
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if got := selectorStrings(t, rules[0]); len(got) != 1 || got[0] != `a[href$=".png"]::after` {
		t.Errorf("unexpected first selector %v", got)
	}
	if got := selectorStrings(t, rules[1]); len(got) != 1 || got[0] != "div > p:first-child" {
		t.Errorf("unexpected second selector %v", got)
	}
	if rules[0].Index != 0 || rules[1].Index != 1 {
		t.Errorf("unexpected rule indexes %d, %d", rules[0].Index, rules[1].Index)
	}
}

func TestParser_MediaBlockPreserved(t *testing.T) {
	sheet := newParser(t).Parse([]byte(`
p { margin: 0; }
@media print {
	p { margin: 1em; }
}
.test { color: red; }
`))

	if len(sheet.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(sheet.Items))
	}
	mb := sheet.Items[1].MediaBlock
	if mb == nil {
		t.Fatal("expected second item to be a MediaBlock")
	}
	if mb.Query != "print" {
		t.Errorf("expected media query 'print', got '%s'", mb.Query)
	}
	if len(mb.Rules) != 1 || mb.Rules[0].Selector != "p" {
		t.Fatalf("expected media block rule 'p', got %+v", mb.Rules)
	}
	if v, _ := mb.Rules[0].Get("margin"); v != "1em" {
		t.Errorf("expected media block p margin: 1em, got '%s'", v)
	}

	if n := len(sheet.Rules(false)); n != 2 {
		t.Errorf("expected 2 top-level rules, got %d", n)
	}
	all := sheet.Rules(true)
	if len(all) != 3 {
		t.Fatalf("expected 3 rules with media, got %d", len(all))
	}
	if all[1].Index != 1 || all[1].Selector != "p" || all[2].Index != 2 {
		t.Errorf("unexpected rule order %+v", all)
	}
}

func TestParser_ImportAndUnsupportedAtRules(t *testing.T) {
	sheet := newParser(t).Parse([]byte(`
@import url("base.css");
@font-face { font-family: "X"; src: url(x.ttf); }
body { color: black; }
`), "test.css")

	if len(sheet.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(sheet.Items))
	}
	if sheet.Items[0].Import == nil || *sheet.Items[0].Import != "base.css" {
		t.Errorf("expected import of base.css, got %+v", sheet.Items[0])
	}
	if len(sheet.Warnings) != 1 || !strings.Contains(sheet.Warnings[0], "@font-face") {
		t.Errorf("expected one @font-face warning, got %v", sheet.Warnings)
	}
	if len(sheet.RulesBySelector("body")) != 1 {
		t.Error("expected body rule")
	}
}

func TestParser_NilLogger(t *testing.T) {
	sheet := css.NewParser(nil).Parse([]byte(`em { font-style: italic }`))
	if len(sheet.Rules(false)) != 1 {
		t.Fatal("expected 1 rule")
	}
}

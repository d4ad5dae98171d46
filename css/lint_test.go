package css_test

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"

	"cssb/css"
	"cssb/selector"
)

const lintSample = `
div#main.a { color: red; }
.a#b { color: blue; }
h1, #x#y, p::before::after { margin: 0; }
@media print {
	span.x#late { display: none; }
}
@page { margin: 1cm; }
`

func TestLint(t *testing.T) {
	log := zaptest.NewLogger(t)
	sheet := css.NewParser(log).Parse([]byte(lintSample))

	rpt := css.Lint(sheet, css.LintOptions{}, log)
	if rpt.Rules != 3 {
		t.Errorf("expected 3 rules checked, got %d", rpt.Rules)
	}
	if len(rpt.Findings) != 3 {
		t.Fatalf("expected 3 findings, got %d: %v", len(rpt.Findings), rpt.Findings)
	}

	if f := rpt.Findings[0]; f.Rule != 1 || !errors.Is(f, selector.ErrOrder) {
		t.Errorf("unexpected first finding %v", f)
	}
	if f := rpt.Findings[1]; f.Rule != 2 || !errors.Is(f, selector.ErrDuplicatePart) {
		t.Errorf("unexpected second finding %v", f)
	}
	if f := rpt.Findings[2]; f.Rule != 2 || !errors.Is(f, selector.ErrDuplicatePart) {
		t.Errorf("unexpected third finding %v", f)
	}
	if !strings.HasPrefix(rpt.Findings[0].Error(), "rule 1 (.a#b): ") {
		t.Errorf("unexpected finding text %q", rpt.Findings[0].Error())
	}
}

func TestLint_MediaAndStrict(t *testing.T) {
	sheet := css.NewParser(nil).Parse([]byte(lintSample))

	rpt := css.Lint(sheet, css.LintOptions{Media: true, Strict: true}, nil)
	if rpt.Rules != 4 {
		t.Errorf("expected 4 rules checked, got %d", rpt.Rules)
	}
	if len(rpt.Findings) != 5 {
		t.Fatalf("expected 5 findings, got %d: %v", len(rpt.Findings), rpt.Findings)
	}
	if f := rpt.Findings[3]; f.Rule != 3 || !errors.Is(f, selector.ErrOrder) {
		t.Errorf("unexpected media finding %v", f)
	}
	if f := rpt.Findings[4]; f.Rule != -1 || !errors.Is(f, css.ErrWarning) {
		t.Errorf("unexpected warning finding %v", f)
	}
}

func TestReport_Err(t *testing.T) {
	clean := css.Lint(css.NewParser(nil).Parse([]byte(`a { color: red }`)), css.LintOptions{}, nil)
	if err := clean.Err(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	rpt := css.Lint(css.NewParser(nil).Parse([]byte(lintSample)), css.LintOptions{}, nil)
	rpt.Source = "sample.css"
	err := rpt.Err()
	errs := multierr.Errors(err)
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(errs))
	}
	if !strings.HasPrefix(errs[0].Error(), "sample.css: rule 1") {
		t.Errorf("unexpected error text %q", errs[0].Error())
	}
	if !errors.Is(errs[0], selector.ErrOrder) {
		t.Errorf("expected ErrOrder in chain, got %v", errs[0])
	}
}

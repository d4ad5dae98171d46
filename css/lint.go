package css

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrWarning marks parser warnings promoted to findings in strict mode.
var ErrWarning = errors.New("stylesheet warning")

// LintOptions controls which parts of a stylesheet are checked.
type LintOptions struct {
	Media  bool // check rules nested in @media blocks
	Strict bool // report parser warnings as findings
}

// Finding is a single problem discovered by Lint.
type Finding struct {
	Rule     int    // Rule.Index, -1 for stylesheet level findings
	Selector string // offending selector group
	Err      error
}

func (f Finding) Error() string {
	if f.Rule < 0 {
		return f.Err.Error()
	}
	return fmt.Sprintf("rule %d (%s): %v", f.Rule, f.Selector, f.Err)
}

func (f Finding) Unwrap() error { return f.Err }

// Report is the outcome of linting one stylesheet.
type Report struct {
	Source   string
	Rules    int // number of rules checked
	Findings []Finding
}

// Err combines all findings into one error, nil when the sheet is clean.
func (r Report) Err() error {
	var err error
	for _, f := range r.Findings {
		if r.Source != "" {
			err = multierr.Append(err, fmt.Errorf("%s: %w", r.Source, f))
		} else {
			err = multierr.Append(err, f)
		}
	}
	return err
}

// Lint replays every selector of the stylesheet through the selector builder
// and reports each one violating ordering, uniqueness or syntax rules.
func Lint(sheet *Stylesheet, opts LintOptions, log *zap.Logger) Report {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("css-lint")

	var rpt Report
	for _, rule := range sheet.Rules(opts.Media) {
		rpt.Rules++
		if _, err := rule.Selectors(); err != nil {
			for _, e := range multierr.Errors(err) {
				rpt.Findings = append(rpt.Findings, Finding{Rule: rule.Index, Selector: rule.Selector, Err: e})
				log.Debug("Selector rejected", zap.Int("rule", rule.Index), zap.String("selector", rule.Selector), zap.Error(e))
			}
		}
	}
	if opts.Strict {
		for _, w := range sheet.Warnings {
			rpt.Findings = append(rpt.Findings, Finding{Rule: -1, Err: fmt.Errorf("%w: %s", ErrWarning, w)})
		}
	}
	log.Debug("Lint completed", zap.Int("rules", rpt.Rules), zap.Int("findings", len(rpt.Findings)))
	return rpt
}

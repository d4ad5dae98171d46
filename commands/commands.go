// Package commands implements cssb subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"

	"cssb/config"
	"cssb/css"
	"cssb/selector"
	"cssb/state"
)

// output returns where command results are printed.
func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func lintOptions(cfg *config.Config) css.LintOptions {
	if cfg == nil {
		return css.LintOptions{Media: true}
	}
	return css.LintOptions{Media: cfg.Lint.Media, Strict: cfg.Lint.Strict}
}

func indent(cfg *config.Config) string {
	if cfg == nil {
		return ""
	}
	return cfg.Output.Indent
}

var combinatorNames = map[string]selector.Combinator{
	"descendant": selector.Descendant,
	"child":      selector.Child,
	"adjacent":   selector.Adjacent,
	"sibling":    selector.Sibling,
}

// parseCombinator accepts combinator tokens as well as their names, so the
// descendant combinator does not have to be passed as a quoted blank.
func parseCombinator(s string) selector.Combinator {
	if c, ok := combinatorNames[strings.ToLower(s)]; ok {
		return c
	}
	if c := selector.Combinator(strings.TrimSpace(s)); c != "" {
		return c
	}
	return selector.Combinator(s)
}

func checkCtx(ctx context.Context) (*state.LocalEnv, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return state.EnvFromContext(ctx), nil
}

func printf(cmd *cli.Command, format string, args ...any) error {
	if _, err := fmt.Fprintf(output(cmd), format, args...); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}

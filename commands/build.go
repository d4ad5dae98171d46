package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssb/css"
	"cssb/selector"
)

// Build composes a selector from KIND=VALUE arguments and prints it, or
// prints a whole rule when declarations are given.
func Build(ctx context.Context, cmd *cli.Command) error {
	env, err := checkCtx(ctx)
	if err != nil {
		return err
	}
	log := env.Logger().Named("build")

	if cmd.NArg() == 0 {
		return errors.New("no selector parts have been specified")
	}

	parts := make([]selector.Part, 0, cmd.NArg())
	for _, arg := range cmd.Args().Slice() {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			return fmt.Errorf("malformed selector part %q, expected KIND=VALUE", arg)
		}
		kind, err := selector.ParseKind(name)
		if err != nil {
			return err
		}
		parts = append(parts, selector.Part{Kind: kind, Value: value})
	}

	b, err := selector.Build(parts...)
	if err != nil {
		return fmt.Errorf("unable to build selector: %w", err)
	}
	log.Debug("Selector built", zap.Stringer("selector", b), zap.Int("parts", len(parts)))

	decls := cmd.StringSlice("declare")
	if len(decls) == 0 {
		return printf(cmd, "%s\n", b)
	}

	sheet := css.Stylesheet{Indent: indent(env.Cfg)}
	rule := sheet.AddRule(b)
	for _, d := range decls {
		prop, value, found := strings.Cut(d, ":")
		if !found {
			return fmt.Errorf("malformed declaration %q, expected PROPERTY:VALUE", d)
		}
		rule.Declarations = append(rule.Declarations, css.Declaration{
			Property: strings.TrimSpace(prop),
			Value:    strings.TrimSpace(value),
		})
	}
	if _, err := sheet.WriteTo(output(cmd)); err != nil {
		return fmt.Errorf("unable to write rule: %w", err)
	}
	return nil
}

package commands

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssb/selector"
)

// Combine parses two selectors and joins them with a combinator.
func Combine(ctx context.Context, cmd *cli.Command) error {
	env, err := checkCtx(ctx)
	if err != nil {
		return err
	}
	log := env.Logger().Named("combine")

	if cmd.NArg() != 3 {
		return errors.New("expected exactly 3 arguments: LEFT COMBINATOR RIGHT")
	}
	args := cmd.Args()

	left, err := selector.Parse(args.Get(0))
	if err != nil {
		return fmt.Errorf("left selector: %w", err)
	}
	right, err := selector.Parse(args.Get(2))
	if err != nil {
		return fmt.Errorf("right selector: %w", err)
	}
	joined, err := selector.Combine(left, parseCombinator(args.Get(1)), right)
	if err != nil {
		return err
	}
	log.Debug("Selectors combined", zap.Stringer("left", left), zap.Stringer("right", right), zap.Stringer("result", joined))
	return printf(cmd, "%s\n", joined)
}

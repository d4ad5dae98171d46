package commands

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssb/selector"
)

// Check validates selector groups given on the command line.
func Check(ctx context.Context, cmd *cli.Command) error {
	env, err := checkCtx(ctx)
	if err != nil {
		return err
	}
	log := env.Logger().Named("check")

	if cmd.NArg() == 0 {
		return errors.New("no selectors to check")
	}

	var errs error
	for _, text := range cmd.Args().Slice() {
		list, err := selector.ParseList(text)
		if err != nil {
			log.Warn("Selector rejected", zap.String("selector", text), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%q: %w", text, err))
			if err := printf(cmd, "FAIL %s\n", text); err != nil {
				return err
			}
			continue
		}
		for _, b := range list {
			if err := printf(cmd, "OK   %s\n", b); err != nil {
				return err
			}
		}
	}
	return errs
}

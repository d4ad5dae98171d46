package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssb/css"
)

// Lint checks every selector of the given stylesheets.
func Lint(ctx context.Context, cmd *cli.Command) error {
	env, err := checkCtx(ctx)
	if err != nil {
		return err
	}
	log := env.Logger().Named("lint")

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errors.New("no stylesheets have been specified")
	}
	files = slices.Clone(files)
	slices.SortFunc(files, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})

	opts := lintOptions(env.Cfg)
	if cmd.IsSet("strict") {
		opts.Strict = cmd.Bool("strict")
	}

	parser := css.NewParser(log)

	var errs error
	for _, fname := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := os.ReadFile(fname)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to read stylesheet: %w", err))
			continue
		}

		rpt := css.Lint(parser.Parse(data, fname), opts, log)
		rpt.Source = fname
		for _, f := range rpt.Findings {
			log.Warn("Problem found", zap.String("file", fname), zap.Int("rule", f.Rule), zap.String("selector", f.Selector), zap.Error(f.Err))
		}
		if err := printf(cmd, "%s: %d rules, %d findings\n", fname, rpt.Rules, len(rpt.Findings)); err != nil {
			return err
		}
		errs = multierr.Append(errs, rpt.Err())
	}
	return errs
}

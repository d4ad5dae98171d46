package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssb/commands"
	"cssb/config"
	"cssb/misc"
	"cssb/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		env.Cfg.Logging.ConsoleLogger.Level = "debug"
	}
	if env.Log, err = env.Cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", cmd.Args().Slice()), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging, errors must be reported directly to stderr from now on
	env.RestoreStdLog()

	if env.Cfg != nil && env.Cfg.Logging.FileLogger.Level != "none" {
		if fi, er := os.Stat(env.Cfg.Logging.FileLogger.Destination); er == nil && fi.Size() == 0 {
			if er := os.Remove(env.Cfg.Logging.FileLogger.Destination); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty log file '%s': %w", env.Cfg.Logging.FileLogger.Destination, er))
			}
		}
	}
	return
}

// Ignore urfave/cli default error handling, subcommands return regular errors.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Logger().Warn("Unknown command, nothing to do", zap.String("command", name))
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "builds, checks and lints CSS selectors",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "enables debug level console logging"},
		},
		Commands: []*cli.Command{
			{
				Name:         "build",
				Usage:        "Builds selector from its parts",
				OnUsageError: usageErrorHandler,
				Action:       commands.Build,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "declare", Aliases: []string{"D"}, Usage: "add `PROPERTY:VALUE` declaration and print complete rule"},
				},
				ArgsUsage: "KIND=VALUE...",
				CustomHelpTemplate: fmt.Sprintf(`%s
KIND:
    one of element, id, class, attribute, pseudo-class, pseudo-element

    Parts must follow in this order, element, id and pseudo-element may be
    used only once. Values are used verbatim.
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "combine",
				Usage:        "Joins two selectors with combinator",
				OnUsageError: usageErrorHandler,
				Action:       commands.Combine,
				ArgsUsage:    "LEFT COMBINATOR RIGHT",
				CustomHelpTemplate: fmt.Sprintf(`%s
COMBINATOR:
    one of ">", "+", "~", " " or its name: child, adjacent, sibling, descendant
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "check",
				Usage:        "Validates selectors",
				OnUsageError: usageErrorHandler,
				Action:       commands.Check,
				ArgsUsage:    "SELECTOR...",
			},
			{
				Name:         "lint",
				Usage:        "Checks selectors of stylesheet file(s)",
				OnUsageError: usageErrorHandler,
				Action:       commands.Lint,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "strict", Usage: "treat parser warnings as problems (overrides configuration)"},
				},
				ArgsUsage: "FILE...",
			},
			{
				Name:         "rect",
				Usage:        "Prints rectangle as JSON",
				OnUsageError: usageErrorHandler,
				Action:       commands.Rect,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "decode rectangle from `JSON` instead of arguments"},
				},
				ArgsUsage: "WIDTH HEIGHT",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values wich is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Logger()

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	log.Debug("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}

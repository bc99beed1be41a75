package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"focus-launcher/internal/activation"
	"focus-launcher/internal/errors"
	"focus-launcher/internal/launch"
	"focus-launcher/internal/match"
	"focus-launcher/internal/procinfo"
	"focus-launcher/internal/shell"
	"focus-launcher/internal/wm"
	"focus-launcher/pkg/config"
	"focus-launcher/pkg/global"
	"focus-launcher/pkg/logger"
)

// env bundles everything run touches outside the process, so tests can swap it.
type env struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (*config.Config, error)
	// logWriter replaces the console writer when set.
	logWriter io.Writer

	manager   func(*config.Config) (*wm.Manager, error)
	names     procinfo.Namer
	activator activation.OpenFunc
	launcher  func(*config.Config, *logger.Logger) shell.Launcher
}

func defaultEnv() env {
	return env{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		loadConfig: config.Load,
		manager:    wm.NewManager,
		names:      procinfo.NewLookup(),
		activator:  activation.NewCOMActivator,
		launcher: func(cfg *config.Config, log *logger.Logger) shell.Launcher {
			return shell.NewLauncher(cfg, log)
		},
	}
}

// run executes one invocation and returns the process exit code:
// 0 on success, 1 when every strategy failed, 2 on a usage error.
func run(args []string, e env) int {
	cfg, err := e.loadConfig()
	if err != nil {
		fmt.Fprintln(e.stderr, err)
		return errors.ExitCode(errors.NewUsage(err.Error()))
	}

	err = newCLIApp(cfg, e).Run(append([]string{"focus-launcher"}, normalizeArgs(args)...))
	if errors.Is(err, errors.ErrUsage) {
		fmt.Fprintln(e.stderr, err)
	}
	return errors.ExitCode(err)
}

// newCLIApp creates the CLI application.
func newCLIApp(cfg *config.Config, e env) *cli.App {
	app := &cli.App{
		Name:  "focus-launcher",
		Usage: "Focus a running app window, or activate or launch the app",
		UsageText: "focus-launcher <AppID> [--title <substring>] [--process <name>]\n" +
			"   focus-launcher --list",
		Version:         Version,
		HideHelpCommand: true,
		Writer:          e.stdout,
		ErrWriter:       e.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Usage: "Focus the first visible window whose title contains this text"},
			&cli.StringFlag{Name: "process", Usage: "Only match windows owned by this process name"},
			&cli.BoolFlag{Name: "list", Usage: "Print visible windows as \"title | process\" and exit"},
			&cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return errors.NewUsage(err.Error())
		},
		Action: func(c *cli.Context) error {
			log, err := newLogger(cfg, e, c.Bool("debug"))
			if err != nil {
				return err
			}
			defer log.Close()
			global.InitGlobals(cfg, log)

			log.Debug("Starting focus-launcher",
				"version", Version,
				"pid", os.Getpid(),
				"os", runtime.GOOS,
				"args", c.Args().Slice())

			if c.Bool("list") {
				if c.NArg() > 0 || c.IsSet("title") || c.IsSet("process") {
					return errors.NewUsage("--list takes no other arguments")
				}
				return listWindows(e)
			}

			if c.NArg() == 0 {
				return errors.NewUsage("an app identifier is required")
			}
			id := activation.NormalizePrefix(c.Args().First(), cfg.ShellPrefix)
			if id == "" {
				return errors.NewUsage("the app identifier is empty")
			}

			strategy := newStrategy(e)
			outcome := strategy.Run(launch.Request{
				AppID: id,
				Criteria: match.Criteria{
					Title:   c.String("title"),
					Process: c.String("process"),
				},
			})
			log.Debug("Finished", "outcome", outcome.String())
			if !outcome.Succeeded() {
				return outcome.Err
			}
			return nil
		},
	}
	// Exit codes are computed by run, not by the framework.
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func newLogger(cfg *config.Config, e env, debug bool) (*logger.Logger, error) {
	level := logger.DefaultLevel
	if debug || cfg.Debug {
		level = zerolog.DebugLevel
	}
	output := logger.WithConsole()
	if e.logWriter != nil {
		output = logger.WithWriter(e.logWriter)
	}
	return logger.NewLogger(output, logger.WithLevel(level), logger.WithFile(cfg.LogFile))
}

func listWindows(e env) error {
	log := global.GetLogger()
	manager, err := e.manager(global.GetConfig())
	if err != nil {
		log.Error("Window backend unavailable", err)
		return err
	}
	log.Info("Listing windows", "wm", manager.GetWMName())
	return match.List(e.stdout, manager.Directory(), e.names)
}

// newStrategy wires the tiers. Without a window backend the focus tier never
// matches and the chain moves straight on to activation.
func newStrategy(e env) *launch.Strategy {
	cfg := global.GetConfig()
	log := global.GetLogger()

	var focus launch.WindowFocuser = noWindows{}
	if manager, err := e.manager(cfg); err != nil {
		log.Debug("Window backend unavailable", "error", err.Error())
	} else {
		log.Info("Using window backend", "wm", manager.GetWMName())
		focus = match.NewMatcher(manager.Directory(), manager.FocusStealer(), e.names, log)
	}

	resolver := activation.NewResolver(e.activator, cfg.DefaultEntry, log)
	return launch.NewStrategy(focus, resolver, e.launcher(cfg, log), log)
}

type noWindows struct{}

func (noWindows) FindAndFocus(match.Criteria) (wm.Window, bool) {
	return wm.Window{}, false
}

// normalizeArgs accepts the documented command line shape, where options may
// follow the app id and are case-insensitive. Options are moved in front of
// positional arguments; --title or --process without a value is dropped.
// Everything after "--" is positional.
func normalizeArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		lower := strings.ToLower(arg)
		switch {
		case lower == "--title" || lower == "--process":
			if i+1 < len(args) {
				flags = append(flags, lower, args[i+1])
				i++
			}
		case lower == "--list" || lower == "--debug":
			flags = append(flags, lower)
		case strings.HasPrefix(arg, "-") && arg != "-":
			flags = append(flags, arg)
		default:
			positional = append(positional, arg)
		}
	}
	if len(positional) == 0 {
		return flags
	}
	return append(append(flags, "--"), positional...)
}

// Command sandbox runs the engine with its debug tooling and a single demo
// entity and a cursor. With --debug, commands typed on stdin drive the debug shell; try
// "help", "entities" or "inspect 1".
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/edwinsyarief/kumiki"
	"github.com/edwinsyarief/kumiki/engine"
	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	config  string
	debug   bool
	profile string
	watch   bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "sandbox",
		Short:        "Run the engine sandbox",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "kumiki.yaml", "configuration file")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "read shell commands from stdin")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "write a cpu or mem profile to the working directory")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "reload resources when files change")
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts options) error {
	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return eris.Errorf("unknown profile %q, expected cpu or mem", opts.profile)
	}

	cfg, err := engine.LoadConfig(opts.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = opts.debug
	}

	logger, err := engine.NewLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	stats, err := engine.NewStats(cfg.StatsdAddress, cfg.StatsdTags, logger)
	if err != nil {
		return err
	}
	defer stats.Close()

	o, err := engine.NewOrchestrator(cfg, engine.WithLogger(logger), engine.WithStats(stats))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var closers []func() error
	defer func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.Warn().Err(err).Msg("shutdown")
			}
		}
	}()

	err = o.Run(ctx, func(o *engine.Orchestrator) error {
		w := o.World

		hero := w.CreateEntity()
		if _, _, err := kumiki.AddComponent(w.Assembly, hero, engine.Description{Name: "hero"}); err != nil {
			return err
		}
		if _, _, err := kumiki.AddComponent(w.Assembly, hero, engine.Position{}); err != nil {
			return err
		}

		pointer := w.CreateEntity()
		if _, _, err := kumiki.AddComponent(w.Assembly, pointer, engine.Cursor{}); err != nil {
			return err
		}

		systems := []engine.System{
			engine.NewEventMonitor(),
			engine.NewCursorController(),
			engine.NewDebugMover("hero", 5, 1),
			engine.NewRenderStats(w),
		}

		if cfg.Debug {
			console := engine.NewDebugConsole(os.Stdin, cfg.ConsoleBuffer)
			closers = append(closers, console.Close)

			shell := engine.NewDebugShell(os.Stdout)
			if err := addScriptCommands(o, shell, logger); err != nil {
				return err
			}
			systems = append(systems, console, shell)
		}

		if opts.watch {
			watcher, err := engine.NewResourceWatcher([]string{cfg.ResourcePath}, cfg.WatchExtensions)
			if err != nil {
				return err
			}
			closers = append(closers, watcher.Close)
			systems = append(systems, watcher)
		}

		for _, s := range systems {
			if err := w.AddSystem(s); err != nil {
				return err
			}
		}
		return nil
	})
	return err
}

// addScriptCommands registers every script in the commands resource directory
// as a custom shell command named after the file.
func addScriptCommands(o *engine.Orchestrator, shell *engine.DebugShell, logger zerolog.Logger) error {
	pattern := filepath.Join(o.Config().ResourcePath, "commands", "*.tengo")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return eris.Wrapf(err, "list %s", pattern)
	}
	for _, p := range paths {
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		path, err := o.File("commands", filepath.Base(p))
		if err != nil {
			logger.Warn().Err(err).Str("command", name).Msg("command script skipped")
			continue
		}
		script, err := engine.LoadScriptCommand(path)
		if err != nil {
			return err
		}
		shell.AddCommand(name, script)
		logger.Debug().Str("command", name).Str("path", path).Msg("script command registered")
	}
	return nil
}

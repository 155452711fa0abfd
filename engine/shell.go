package engine

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/edwinsyarief/kumiki"
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// CustomCommand is a shell command registered at runtime. args[0] is the
// command name.
type CustomCommand interface {
	Run(args []string, out io.Writer) (immediate, deferred []Event, err error)
}

// CommandFunc adapts a function to CustomCommand.
type CommandFunc func(args []string, out io.Writer) (immediate, deferred []Event, err error)

// Run calls f.
func (f CommandFunc) Run(args []string, out io.Writer) ([]Event, []Event, error) {
	return f(args, out)
}

// DebugShell interprets ConsoleCommand events. It knows a set of builtin
// commands and dispatches anything else to registered custom commands.
// Command errors are printed to the shell output and never leave the system.
type DebugShell struct {
	kumiki.NoRequirements

	out      io.Writer
	registry map[string]CustomCommand
}

// NewDebugShell creates a shell printing to out, or to stdout if out is nil.
func NewDebugShell(out io.Writer) *DebugShell {
	if out == nil {
		out = os.Stdout
	}
	return &DebugShell{out: out, registry: make(map[string]CustomCommand)}
}

// AddCommand registers cmd under name, replacing any previous command of that
// name. Builtins take precedence over custom commands.
func (s *DebugShell) AddCommand(name string, cmd CustomCommand) {
	s.registry[name] = cmd
}

// RemoveCommand unregisters name.
func (s *DebugShell) RemoveCommand(name string) {
	delete(s.registry, name)
}

func (s *DebugShell) LoopStageFilter() kumiki.LoopStageFlag { return kumiki.StageHandleEvent }
func (s *DebugShell) EventFilter() kumiki.EventFlag         { return ConsoleCommandFlag }

func (s *DebugShell) HandleEvent(a *kumiki.Assembly, aux *kumiki.Resources, e Event) ([]Event, []Event) {
	args := e.Args()
	if len(args) == 0 {
		return nil, nil
	}
	immediate, deferred, err := s.interpret(a, aux, args)
	if err != nil {
		fmt.Fprintln(s.out, err)
		loggerFrom(aux).Debug().Err(err).Strs("args", args).Msg("shell command failed")
		return nil, nil
	}
	return immediate, deferred
}

func (s *DebugShell) interpret(a *kumiki.Assembly, aux *kumiki.Resources, args []string) ([]Event, []Event, error) {
	var immediate, deferred []Event
	root := s.builtins(a, aux, &immediate, &deferred)
	if cmd, _, err := root.Find(args); err == nil && cmd != root {
		root.SetArgs(args)
		if err := root.Execute(); err != nil {
			return nil, nil, err
		}
		return immediate, deferred, nil
	}
	if cmd, ok := s.registry[args[0]]; ok {
		return cmd.Run(args, s.out)
	}
	return nil, nil, eris.Wrapf(ErrCommandNotFound, "'%s'", args[0])
}

// builtins assembles a fresh command tree for one invocation. Commands append
// the events they produce to immediate and deferred.
func (s *DebugShell) builtins(a *kumiki.Assembly, aux *kumiki.Resources, immediate, deferred *[]Event) *cobra.Command {
	root := &cobra.Command{
		Use:           "shell",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(s.out)
	root.SetErr(s.out)

	root.SetHelpCommand(&cobra.Command{
		Use:   "help",
		Short: "Print this message",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "For more information on a specific command, type COMMAND --help.")
			for _, c := range root.Commands() {
				fmt.Fprintf(out, "%s\t%s\n", c.Name(), c.Short)
			}
			names := make([]string, 0, len(s.registry))
			for name := range s.registry {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				fmt.Fprintf(out, "%s\t(custom)\n", name)
			}
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "exit",
		Short: "Shut the engine down",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			*deferred = append(*deferred, NewShutdown())
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "reload-resources [path]",
		Short: "Reload every resource, or only the one at path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			*deferred = append(*deferred, NewReloadResources(path))
			return nil
		},
	})

	var lifetime int
	bubble := &cobra.Command{
		Use:   "speech-bubble [-l seconds] TARGET TEXT",
		Short: "Request a speech bubble above the named entity",
		Args: func(_ *cobra.Command, args []string) error {
			switch {
			case len(args) < 1:
				return eris.Wrap(ErrMissingArgument, "speech-bubble: target")
			case len(args) < 2:
				return eris.Wrap(ErrMissingArgument, "speech-bubble: text")
			case len(args) > 2:
				return eris.Errorf("speech-bubble: unexpected argument %q", args[2])
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if lifetime < 0 {
				return eris.Errorf("speech-bubble: lifetime must not be negative, got %d", lifetime)
			}
			*deferred = append(*deferred, NewSpeechBubble(args[0], args[1], time.Duration(lifetime)*time.Second))
			return nil
		},
	}
	bubble.Flags().IntVarP(&lifetime, "lifetime", "l", 5, "how long the bubble lives, in seconds")
	root.AddCommand(bubble)

	root.AddCommand(&cobra.Command{
		Use:   "suspend on|off",
		Short: "Suspend or resume rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			on, err := parseSwitch(args[0])
			if err != nil {
				return err
			}
			*immediate = append(*immediate, NewSuspend(on))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "entities",
		Short: "List live entities",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			names := make(map[kumiki.Entity]string)
			for _, row := range kumiki.R1[Description](a) {
				names[row.Entity] = row.C1.Name
			}
			for _, e := range a.Entities() {
				if name, ok := names[e]; ok {
					fmt.Fprintf(out, "%s\t%s\n", e, name)
				} else {
					fmt.Fprintln(out, e)
				}
			}
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "inspect ENTITY",
		Short: "Print the components of an entity as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(strings.TrimSuffix(strings.TrimPrefix(args[0], "Entity("), ")"), 10, 64)
			if err != nil {
				return eris.Wrapf(err, "inspect: %q is not an entity", args[0])
			}
			snapshot, err := a.Inspect(kumiki.Entity(id))
			if err != nil {
				return err
			}
			raw, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return eris.Wrap(err, "inspect")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the active configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, ok := kumiki.GetResource[Config](aux)
			if !ok {
				return eris.New("config: no configuration loaded")
			}
			raw, err := yaml.Marshal(cfg)
			if err != nil {
				return eris.Wrap(err, "config")
			}
			fmt.Fprint(cmd.OutOrStdout(), string(raw))
			return nil
		},
	})

	// Register help as a subcommand now so that Find resolves it.
	root.InitDefaultHelpCmd()
	return root
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, eris.Errorf("expected on or off, got %q", s)
	}
	return v, nil
}

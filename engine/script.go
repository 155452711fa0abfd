package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/rotisserie/eris"
)

// ScriptCommand is a CustomCommand implemented in tengo. The script sees the
// command line in the global array args (args[0] is the command name) and
// may assign event names to the global arrays immediate and deferred, and a
// string to output, which is printed on the shell.
//
//	deferred = len(args) > 1 && args[1] == "quit" ? ["Shutdown"] : []
//	output = "bye"
type ScriptCommand struct {
	compiled *tengo.Compiled
}

// NewScriptCommand compiles src.
func NewScriptCommand(src []byte) (*ScriptCommand, error) {
	script := tengo.NewScript(src)
	_ = script.Add("args", []any{})
	_ = script.Add("immediate", []any{})
	_ = script.Add("deferred", []any{})
	_ = script.Add("output", "")

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, eris.Wrap(err, "compile command script")
	}
	return &ScriptCommand{compiled: compiled}, nil
}

// LoadScriptCommand compiles the script at path.
func LoadScriptCommand(path string) (*ScriptCommand, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read command script %s", path)
	}
	cmd, err := NewScriptCommand(src)
	if err != nil {
		return nil, eris.Wrapf(err, "%s", path)
	}
	return cmd, nil
}

// Run executes a fresh copy of the compiled script.
func (s *ScriptCommand) Run(args []string, out io.Writer) ([]Event, []Event, error) {
	c := s.compiled.Clone()
	argv := make([]any, len(args))
	for i, a := range args {
		argv[i] = a
	}
	if err := c.Set("args", argv); err != nil {
		return nil, nil, eris.Wrap(err, "set script args")
	}
	if err := c.Run(); err != nil {
		return nil, nil, eris.Wrap(err, "run command script")
	}

	immediate, err := scriptEvents(c.Get("immediate"))
	if err != nil {
		return nil, nil, err
	}
	deferred, err := scriptEvents(c.Get("deferred"))
	if err != nil {
		return nil, nil, err
	}
	if text := c.Get("output").String(); text != "" {
		fmt.Fprintln(out, text)
	}
	return immediate, deferred, nil
}

func scriptEvents(v *tengo.Variable) ([]Event, error) {
	if v.IsUndefined() {
		return nil, nil
	}
	var events []Event
	for _, item := range v.Array() {
		name, ok := item.(string)
		if !ok {
			return nil, eris.Errorf("script event must be a string, got %T", item)
		}
		kind, err := ParseEventKind(name)
		if err != nil {
			return nil, err
		}
		events = append(events, NewEvent(kind))
	}
	return events, nil
}

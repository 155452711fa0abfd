package engine

import "github.com/rotisserie/eris"

var (
	ErrCommandNotFound   = eris.New("not a recognized builtin or command")
	ErrMissingArgument   = eris.New("missing required argument")
	ErrInvalidUTF8       = eris.New("console input is not valid utf-8")
	ErrInvalidConfig     = eris.New("invalid configuration")
	ErrFileNotAccessible = eris.New("file not accessible")
	ErrUnknownEvent      = eris.New("unknown event")
	ErrTargetNotFound    = eris.New("target entity not found")
)

package engine

import (
	"strings"
	"unicode"
)

const (
	escapeChar = '\\'
	quoteChar  = '"'
)

// SplitArguments splits a command line into arguments. Whitespace separates
// arguments unless it is quoted or escaped. A quoted section may be empty,
// producing an empty argument; an unterminated quote runs to the end of the
// line. The escape character makes the next rune literal, including quotes
// and the escape character itself.
func SplitArguments(line string) []string {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		escaped bool
		pending bool // an argument has started, even if it is still empty
	)
	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
			pending = true
		case r == escapeChar:
			escaped = true
			pending = true
		case r == quoteChar:
			quoted = !quoted
			pending = true
		case unicode.IsSpace(r) && !quoted:
			if pending {
				args = append(args, current.String())
				current.Reset()
				pending = false
			}
		default:
			current.WriteRune(r)
			pending = true
		}
	}
	if escaped {
		current.WriteRune(escapeChar)
	}
	if pending {
		args = append(args, current.String())
	}
	return args
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitArguments(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "  \t ", nil},
		{"words", "a b  c", []string{"a", "b", "c"}},
		{"quoted", `say "hello world"`, []string{"say", "hello world"}},
		{"empty quotes", `a "" b`, []string{"a", "", "b"}},
		{"joined quotes", `x"y z"w`, []string{"xy zw"}},
		{"escaped space", `a\ b`, []string{"a b"}},
		{"escaped quote", `\"q\"`, []string{`"q"`}},
		{"escaped escape", `a\\b`, []string{`a\b`}},
		{"trailing escape", `trail\`, []string{`trail\`}},
		{"unterminated quote", `say "open ended`, []string{"say", "open ended"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitArguments(tt.line))
		})
	}
}

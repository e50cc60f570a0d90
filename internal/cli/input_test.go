package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/dmitrijs2005/snippets/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSnippet_Pipe(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single line", "hello world\n", "hello world"},
		{"no trailing newline", "hello", "hello"},
		{"keeps inner blank lines", "one\n\ntwo\n\n", "one\n\ntwo"},
		{"crlf", "hello\r\n", "hello"},
		{"leading spaces kept", "  indented\n", "  indented"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := &bytes.Buffer{}

			got, err := readSnippet(strings.NewReader(tt.in), prompt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, prompt.String(), "no prompt when input is not a terminal")
		})
	}
}

func TestReadSnippet_Empty(t *testing.T) {
	for _, in := range []string{"", "\n", "   \n\t\n"} {
		_, err := readSnippet(strings.NewReader(in), &bytes.Buffer{})
		assert.ErrorIs(t, err, common.ErrorEmptySnippet, "input %q", in)
	}
}

func TestReadUntilEmptyLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"stops at blank line", "one\ntwo\n\nignored\n", "one\ntwo"},
		{"eof without newline", "one\ntwo", "one\ntwo"},
		{"immediate blank", "\nrest\n", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readUntilEmptyLine(bufio.NewReader(strings.NewReader(tt.in)))
			assert.Equal(t, tt.want, got)
		})
	}
}

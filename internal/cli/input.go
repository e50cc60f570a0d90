package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/snippets/internal/common"
	"golang.org/x/term"
)

// readSnippet reads a snippet body from in. On a terminal the user is
// prompted and input ends at the first empty line; otherwise all of in is
// read and trailing newlines are dropped.
func readSnippet(in io.Reader, prompt io.Writer) (string, error) {
	var text string
	if isTerminal(in) {
		fmt.Fprintln(prompt, "Enter snippet text, finish with an empty line")
		text = readUntilEmptyLine(bufio.NewReader(in))
	} else {
		b, err := io.ReadAll(in)
		if err != nil {
			return "", err
		}
		text = strings.TrimRight(string(b), "\r\n")
	}

	if strings.TrimSpace(text) == "" {
		return "", common.ErrorEmptySnippet
	}
	return text, nil
}

func readUntilEmptyLine(reader *bufio.Reader) string {
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	return strings.Join(lines, "\n")
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

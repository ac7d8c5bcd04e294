package shell

import (
	"strings"

	"github.com/google/shlex"
)

const stepSeparator = '|'

// splitSegments splits line on unquoted '|' and tokenizes every segment with shlex.
// The result always has at least one segment. An unquoted '#' is escaped so it stays
// part of a word ("#ff0000" is a value here, not a comment).
func splitSegments(line string) ([][]string, error) {
	var (
		segments [][]string
		cur      strings.Builder
		quote    rune
		escaped  bool
	)
	flush := func() error {
		words, err := shlex.Split(cur.String())
		if err != nil {
			return err
		}
		segments = append(segments, words)
		cur.Reset()
		return nil
	}
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == stepSeparator:
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		case r == '#':
			cur.WriteByte('\\')
		}
		cur.WriteRune(r)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return segments, nil
}

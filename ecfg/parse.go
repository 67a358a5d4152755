package ecfg

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/fpq/automaton"
)

// ParseText parses the documented ECFG text format: exactly one
// `head -> regex` line per variable, head capital-initial, body a
// regex in the standard operator set (see automaton.ParseRegex).
func ParseText(text string) (*ECFG, error) {
	out := &ECFG{Productions: make(map[Variable]*automaton.Regex)}
	start := Variable("")

	for lineNo, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		headPart, bodyPart, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing '->'", ErrInvalidGrammarText, lineNo+1)
		}
		head := strings.TrimSpace(headPart)
		if head == "" || !unicode.IsUpper([]rune(head)[0]) {
			return nil, fmt.Errorf("%w: line %d: head %q must be capital-initial", ErrInvalidGrammarText, lineNo+1, head)
		}
		v := Variable(head)
		if _, dup := out.Productions[v]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate production for %q", ErrInvalidGrammarText, lineNo+1, head)
		}
		r, err := automaton.ParseRegex(strings.TrimSpace(bodyPart))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidGrammarText, lineNo+1, err)
		}
		out.Productions[v] = r
		if start == "" {
			start = v
		}
	}

	if len(out.Productions) == 0 {
		return nil, fmt.Errorf("%w: empty ECFG text", ErrInvalidGrammarText)
	}
	out.Start = start

	return out, nil
}

package grammar

import (
	"fmt"
	"strings"
	"unicode"
)

var epsilonSpellings = map[string]struct{}{
	"epsilon": {},
	"$":       {},
	"ε":       {},
	"ϵ":       {},
	"Є":       {},
}

// ParseText parses the documented grammar text format: one production
// head per line, `head -> body_1 | body_2 | ... | body_n`, tokens
// separated by whitespace, capital-initial tokens are variables and
// everything else is a terminal, ε spelled as epsilon/$/ε/ϵ/Є. The
// start symbol is always "S", whether or not any line heads with it;
// use WithStartSymbol to select another. Blank lines and lines
// starting with '#' are ignored.
func ParseText(text string) (*CFG, error) {
	g := New("S")
	sawProduction := false

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
		if head == "" {
			return nil, fmt.Errorf("%w: line %d: empty head", ErrInvalidGrammarText, lineNo+1)
		}
		if !isVariableToken(head) {
			return nil, fmt.Errorf("%w: line %d: head %q must be capital-initial", ErrInvalidGrammarText, lineNo+1, head)
		}
		sawProduction = true

		for _, alt := range strings.Split(bodyPart, "|") {
			toks := strings.Fields(alt)
			body := make([]Symbol, 0, len(toks))
			for _, tok := range toks {
				if _, isEps := epsilonSpellings[tok]; isEps {
					continue
				}
				if isVariableToken(tok) {
					body = append(body, Variable(tok))
				} else {
					body = append(body, Terminal(tok))
				}
			}
			g.AddProduction(Variable(head), body...)
		}
	}

	if !sawProduction {
		return nil, fmt.Errorf("%w: empty grammar text", ErrInvalidGrammarText)
	}

	return g, nil
}

func isVariableToken(tok string) bool {
	r := []rune(tok)
	if len(r) == 0 {
		return false
	}

	return unicode.IsUpper(r[0])
}

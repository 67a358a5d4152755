package cfpq

import "github.com/katalvlaran/fpq/grammar"

// Triple is a single CFPQ result element: node u derives variable A
// reaching node v.
type Triple struct {
	U int
	A grammar.Variable
	V int
}

// indexProductions partitions wcnf's productions (assumed already in
// WCNF shape) into the three lookup tables every engine needs:
// epsilon heads, terminal-body heads by terminal, and binary bodies
// by (first, second) variable pair.
func indexProductions(wcnf *grammar.CFG) (epsilonHeads []grammar.Variable, byTerminal map[grammar.Terminal][]grammar.Variable, byBinaryBody map[[2]grammar.Variable][]grammar.Variable) {
	byTerminal = make(map[grammar.Terminal][]grammar.Variable)
	byBinaryBody = make(map[[2]grammar.Variable][]grammar.Variable)

	for _, p := range wcnf.Productions() {
		switch len(p.Body) {
		case 0:
			epsilonHeads = append(epsilonHeads, p.Head)
		case 1:
			if t, ok := p.Body[0].(grammar.Terminal); ok {
				byTerminal[t] = append(byTerminal[t], p.Head)
			}
		case 2:
			b, bOK := p.Body[0].(grammar.Variable)
			c, cOK := p.Body[1].(grammar.Variable)
			if bOK && cOK {
				key := [2]grammar.Variable{b, c}
				byBinaryBody[key] = append(byBinaryBody[key], p.Head)
			}
		}
	}

	return epsilonHeads, byTerminal, byBinaryBody
}

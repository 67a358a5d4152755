package grammar

import "github.com/katalvlaran/fpq/internal/flogging"

// Decompose returns a clone of g whose production bodies each match
// one of the three WCNF shapes: empty (ε), a single terminal, or a
// sequence of two or more variables later binarized to exactly two.
// Terminals appearing alongside other symbols are first isolated
// behind fresh variables (TERM step); variable sequences longer than
// two are then split pairwise from the right using fresh variables
// (BIN step): the last two symbols are replaced by a fresh variable
// until two remain.
func (g *CFG) Decompose() *CFG {
	used := make(map[Variable]struct{}, len(g.variables))
	for v := range g.variables {
		used[v] = struct{}{}
	}
	freshTerm := newVariableGenerator(used, "#TERM")
	freshBin := newVariableGenerator(used, "#BIN")

	out := New(g.start)
	for v := range g.variables {
		out.variables[v] = struct{}{}
	}

	var extra []Production
	termOf := make(map[Terminal]Variable)

	for _, p := range g.productions {
		switch {
		case len(p.Body) == 0, len(p.Body) == 1:
			out.AddProduction(p.Head, p.Body...)
			continue
		}

		body := make([]Symbol, len(p.Body))
		for i, s := range p.Body {
			if t, ok := s.(Terminal); ok {
				tv, ok := termOf[t]
				if !ok {
					tv = freshTerm()
					termOf[t] = tv
					extra = append(extra, Production{Head: tv, Body: []Symbol{t}})
				}
				body[i] = tv
			} else {
				body[i] = s
			}
		}

		for len(body) > 2 {
			nv := freshBin()
			extra = append(extra, Production{Head: nv, Body: []Symbol{body[len(body)-2], body[len(body)-1]}})
			body = append(body[:len(body)-2], nv)
		}
		out.AddProduction(p.Head, body...)
	}
	for _, p := range extra {
		out.AddProduction(p.Head, p.Body...)
	}

	return out
}

// ToWCNF runs the full normalization pipeline: remove useless symbols,
// eliminate unit productions, remove useless symbols again, then
// decompose. The result generates the same language as g and every
// production matches one of the three WCNF shapes.
func (g *CFG) ToWCNF() *CFG {
	flogging.Verbosef("grammar: normalizing %d productions to WCNF", len(g.productions))
	step1 := g.RemoveUseless()
	flogging.Debugf("grammar: removed useless, %d productions remain", len(step1.productions))
	step2 := step1.EliminateUnitProductions()
	flogging.Debugf("grammar: eliminated unit productions, %d productions remain", len(step2.productions))
	step3 := step2.RemoveUseless()
	flogging.Debugf("grammar: removed useless again, %d productions remain", len(step3.productions))
	step4 := step3.Decompose()
	flogging.Verbosef("grammar: WCNF normalization complete, %d productions", len(step4.productions))

	return step4
}

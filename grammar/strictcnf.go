package grammar

import "github.com/katalvlaran/fpq/internal/flogging"

// ToStrictCNF runs ToWCNF's pipeline with one extra step up front:
// every ε-production is eliminated via nullable-variable expansion
// before unit elimination and decomposition run, so every resulting
// production matches exactly one of the two strict CNF shapes,
// A → BC or A → a, with no ε-productions surviving, not even on the
// start symbol. Whether g itself generates ε is a separate question a
// caller must answer by inspecting g's own productions; this result
// only covers L(g) \ {ε}.
func (g *CFG) ToStrictCNF() *CFG {
	flogging.Verbosef("grammar: normalizing %d productions to strict CNF", len(g.productions))
	step0 := g.eliminateEpsilonProductions()
	flogging.Debugf("grammar: eliminated epsilon productions, %d productions remain", len(step0.productions))
	step1 := step0.RemoveUseless()
	flogging.Debugf("grammar: removed useless, %d productions remain", len(step1.productions))
	step2 := step1.EliminateUnitProductions()
	flogging.Debugf("grammar: eliminated unit productions, %d productions remain", len(step2.productions))
	step3 := step2.RemoveUseless()
	flogging.Debugf("grammar: removed useless again, %d productions remain", len(step3.productions))
	step4 := step3.Decompose()
	flogging.Verbosef("grammar: strict CNF normalization complete, %d productions", len(step4.productions))

	return step4
}

// nullableVariables computes the fixed point of variables that derive
// ε: directly via an ε-production, or transitively via a production
// whose entire body is already-nullable variables.
func (g *CFG) nullableVariables() map[Variable]struct{} {
	nullable := make(map[Variable]struct{})
	for _, p := range g.productions {
		if p.IsEpsilon() {
			nullable[p.Head] = struct{}{}
		}
	}
	for {
		changed := false
		for _, p := range g.productions {
			if _, ok := nullable[p.Head]; ok || p.IsEpsilon() {
				continue
			}
			allNullable := true
			for _, s := range p.Body {
				v, ok := s.(Variable)
				if !ok {
					allNullable = false
					break
				}
				if _, ok := nullable[v]; !ok {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable[p.Head] = struct{}{}
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return nullable
}

// eliminateEpsilonProductions returns a clone of g with every
// ε-production dropped and every other production expanded over each
// subset of its nullable-symbol occurrences (skipping the subset that
// would leave an empty body), so the result generates exactly
// L(g) \ {ε} with no ε-productions anywhere.
func (g *CFG) eliminateEpsilonProductions() *CFG {
	nullable := g.nullableVariables()

	out := New(g.start)
	for v := range g.variables {
		out.variables[v] = struct{}{}
	}

	added := make(map[Variable]map[string]struct{})
	addUnique := func(head Variable, body []Symbol) {
		if len(body) == 0 {
			return
		}
		key := bodyKey(body)
		if added[head] == nil {
			added[head] = make(map[string]struct{})
		}
		if _, dup := added[head][key]; dup {
			return
		}
		added[head][key] = struct{}{}
		out.AddProduction(head, body...)
	}

	for _, p := range g.productions {
		if p.IsEpsilon() {
			continue
		}
		var nullableIdx []int
		for i, s := range p.Body {
			if v, ok := s.(Variable); ok {
				if _, ok := nullable[v]; ok {
					nullableIdx = append(nullableIdx, i)
				}
			}
		}
		for mask := 0; mask < (1 << len(nullableIdx)); mask++ {
			drop := make(map[int]struct{}, len(nullableIdx))
			for bit, idx := range nullableIdx {
				if mask&(1<<bit) != 0 {
					drop[idx] = struct{}{}
				}
			}
			var body []Symbol
			for i, s := range p.Body {
				if _, ok := drop[i]; ok {
					continue
				}
				body = append(body, s)
			}
			addUnique(p.Head, body)
		}
	}

	return out
}

func bodyKey(body []Symbol) string {
	b := make([]byte, 0, len(body)*4)
	for _, s := range body {
		b = append(b, s.String()...)
		b = append(b, 0)
	}

	return string(b)
}

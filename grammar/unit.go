package grammar

// EliminateUnitProductions returns a clone of g with every unit
// production A → B (B a lone Variable) removed: for every unit pair
// (A, B) reachable via a chain of unit productions, every non-unit
// production of B is copied to A directly.
func (g *CFG) EliminateUnitProductions() *CFG {
	byHead := make(map[Variable][]Production)
	for _, p := range g.productions {
		byHead[p.Head] = append(byHead[p.Head], p)
	}

	unitPairs := make(map[Variable]map[Variable]struct{})
	for _, v := range g.Variables() {
		closure := map[Variable]struct{}{v: {}}
		queue := []Variable{v}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, p := range byHead[cur] {
				if len(p.Body) == 1 {
					if target, ok := p.Body[0].(Variable); ok {
						if _, seen := closure[target]; !seen {
							closure[target] = struct{}{}
							queue = append(queue, target)
						}
					}
				}
			}
		}
		unitPairs[v] = closure
	}

	out := New(g.start)
	for v := range g.variables {
		out.variables[v] = struct{}{}
	}
	for head, reachable := range unitPairs {
		for b := range reachable {
			for _, p := range byHead[b] {
				if isUnitProduction(p) {
					continue
				}
				out.AddProduction(head, p.Body...)
			}
		}
	}

	return out
}

func isUnitProduction(p Production) bool {
	if len(p.Body) != 1 {
		return false
	}
	_, ok := p.Body[0].(Variable)

	return ok
}

package cfpq

import "github.com/katalvlaran/fpq/grammar"

// CYK decides membership of word in L(cfg) for an arbitrary cfg, via
// the standard cubic dynamic program: d[span][i] is the set of
// variables deriving word[i:i+span+1]. The empty word is special-cased
// against cfg's own productions before normalization runs (it is
// accepted iff the start symbol is nullable), since strict CNF (unlike
// WCNF) carries no ε-productions at all to check against. For every
// other word, cfg is converted to strict CNF internally. ToWCNF alone
// is not enough, since it deliberately keeps ε-productions on internal
// variables and the DP below assumes none remain.
func CYK(cfg *grammar.CFG, word []grammar.Terminal) bool {
	if len(word) == 0 {
		nullable := make(map[grammar.Variable]bool)
		for changed := true; changed; {
			changed = false
			for _, p := range cfg.Productions() {
				all := !nullable[p.Head]
				for _, s := range p.Body {
					v, isVar := s.(grammar.Variable)
					all = all && isVar && nullable[v]
				}
				if all {
					nullable[p.Head], changed = true, true
				}
			}
		}
		return nullable[cfg.Start()]
	}

	cnf := cfg.ToStrictCNF()

	n := len(word)
	unaryHeads := make(map[grammar.Terminal][]grammar.Variable)
	var binary []struct {
		head grammar.Variable
		b, c grammar.Variable
	}
	for _, p := range cnf.Productions() {
		switch len(p.Body) {
		case 1:
			if t, ok := p.Body[0].(grammar.Terminal); ok {
				unaryHeads[t] = append(unaryHeads[t], p.Head)
			}
		case 2:
			b, bOK := p.Body[0].(grammar.Variable)
			c, cOK := p.Body[1].(grammar.Variable)
			if bOK && cOK {
				binary = append(binary, struct {
					head grammar.Variable
					b, c grammar.Variable
				}{p.Head, b, c})
			}
		}
	}

	// d[span][i] holds the set of variables deriving word[i:i+span+1].
	d := make([]map[int]map[grammar.Variable]struct{}, n)
	for span := range d {
		d[span] = make(map[int]map[grammar.Variable]struct{})
	}
	for i := 0; i < n; i++ {
		set := make(map[grammar.Variable]struct{})
		for _, v := range unaryHeads[word[i]] {
			set[v] = struct{}{}
		}
		d[0][i] = set
	}

	for span := 1; span < n; span++ {
		for i := 0; i+span < n; i++ {
			set := make(map[grammar.Variable]struct{})
			for split := 0; split < span; split++ {
				left := d[split][i]
				right := d[span-split-1][i+split+1]
				if len(left) == 0 || len(right) == 0 {
					continue
				}
				for _, rule := range binary {
					if _, ok := left[rule.b]; !ok {
						continue
					}
					if _, ok := right[rule.c]; !ok {
						continue
					}
					set[rule.head] = struct{}{}
				}
			}
			d[span][i] = set
		}
	}

	_, ok := d[n-1][0][cnf.Start()]

	return ok
}

package automaton

// RegexKind discriminates the variants of Regex.
type RegexKind int

const (
	// RegexEpsilon matches only the empty word.
	RegexEpsilon RegexKind = iota
	// RegexLiteral matches exactly one occurrence of Literal.
	RegexLiteral
	// RegexConcat matches Left followed by Right.
	RegexConcat
	// RegexUnion matches Left or Right.
	RegexUnion
	// RegexStar matches zero or more repetitions of Sub.
	RegexStar
)

// Regex is a regex AST over literals, ε, concatenation, union, and
// Kleene star. Exported so callers can build a Regex directly
// (bypassing ParseRegex) for testability.
type Regex struct {
	Kind    RegexKind
	Literal Symbol
	Left    *Regex // Concat, Union
	Right   *Regex // Concat, Union
	Sub     *Regex // Star
}

// Eps returns the ε regex.
func Eps() *Regex { return &Regex{Kind: RegexEpsilon} }

// Lit returns a regex matching exactly the literal symbol sym.
func Lit(sym Symbol) *Regex { return &Regex{Kind: RegexLiteral, Literal: sym} }

// Seq returns a regex matching l followed by r.
func Seq(l, r *Regex) *Regex { return &Regex{Kind: RegexConcat, Left: l, Right: r} }

// Alt returns a regex matching l or r.
func Alt(l, r *Regex) *Regex { return &Regex{Kind: RegexUnion, Left: l, Right: r} }

// Rep returns a regex matching zero or more repetitions of r.
func Rep(r *Regex) *Regex { return &Regex{Kind: RegexStar, Sub: r} }

// Compile builds a Thompson-construction ε-NFA for r: a pair of states
// per literal/epsilon edge plus one extra pair per Union/Star
// combinator (Concat adds no states, only an ε-edge joining its
// operands), with a single start and single final state.
func Compile(r *Regex) *Automaton {
	a := New()
	start, end := build(a, r)
	a.SetStart(start)
	a.SetFinal(end)

	return a
}

func build(a *Automaton, r *Regex) (start, end State) {
	switch r.Kind {
	case RegexEpsilon:
		s, e := a.AddState(), a.AddState()
		a.AddEpsilon(s, e)
		return s, e
	case RegexLiteral:
		s, e := a.AddState(), a.AddState()
		a.AddTransition(s, r.Literal, e)
		return s, e
	case RegexConcat:
		sa, ea := build(a, r.Left)
		sb, eb := build(a, r.Right)
		a.AddEpsilon(ea, sb)
		return sa, eb
	case RegexUnion:
		sa, ea := build(a, r.Left)
		sb, eb := build(a, r.Right)
		s, e := a.AddState(), a.AddState()
		a.AddEpsilon(s, sa)
		a.AddEpsilon(s, sb)
		a.AddEpsilon(ea, e)
		a.AddEpsilon(eb, e)
		return s, e
	case RegexStar:
		sa, ea := build(a, r.Sub)
		s, e := a.AddState(), a.AddState()
		a.AddEpsilon(s, sa)
		a.AddEpsilon(s, e)
		a.AddEpsilon(ea, sa)
		a.AddEpsilon(ea, e)
		return s, e
	default:
		// Unreachable for well-formed Regex values constructed via Eps/Lit/Seq/Alt/Rep.
		s := a.AddState()
		return s, s
	}
}

package gaussquad

// Zeros and weights of the Legendre polynomials P2..P5 on [-1, 1].
// Lowan, Davids and Levenson, Bull. Amer. Math. Soc. 48 (1942), rounded to 16 digits.

var legendre2 = []Node{
	{X: -0.5773502691896257, Weight: 1.0000000000000000},
	{X: 0.5773502691896257, Weight: 1.0000000000000000},
}

var legendre3 = []Node{
	{X: -0.7745966692414834, Weight: 0.5555555555555556},
	{X: 0.0000000000000000, Weight: 0.8888888888888888},
	{X: 0.7745966692414834, Weight: 0.5555555555555556},
}

var legendre4 = []Node{
	{X: -0.8611363115940526, Weight: 0.3478548451374538},
	{X: -0.3399810435848563, Weight: 0.6521451548625461},
	{X: 0.3399810435848563, Weight: 0.6521451548625461},
	{X: 0.8611363115940526, Weight: 0.3478548451374538},
}

var legendre5 = []Node{
	{X: -0.9061798459386640, Weight: 0.2369268850561891},
	{X: -0.5384693101056831, Weight: 0.4786286704993665},
	{X: 0.0000000000000000, Weight: 0.5688888888888889},
	{X: 0.5384693101056831, Weight: 0.4786286704993665},
	{X: 0.9061798459386640, Weight: 0.2369268850561891},
}

// Labels of the built-in rules.
const (
	Legendre2 = "2-point"
	Legendre3 = "3-point"
	Legendre4 = "4-point"
	Legendre5 = "5-point"
)

// LegendreRules returns fresh copies of the built-in Gauss–Legendre rules, two to five nodes.
func LegendreRules() []Rule {
	return []Rule{
		MustRule(Legendre2, legendre2...),
		MustRule(Legendre3, legendre3...),
		MustRule(Legendre4, legendre4...),
		MustRule(Legendre5, legendre5...),
	}
}

// NewLegendreStore builds a store over LegendreRules.
func NewLegendreStore() *Store {
	s, err := NewStore(LegendreRules()...)
	if err != nil {
		panic(err)
	}
	return s
}

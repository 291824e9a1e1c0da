package gaussquad

import (
	"cmp"
	"fmt"
	"math"
	"math/big"
	"slices"
)

// CanonicalLength is the length of [-1, 1]; the weights of a rule sum to it.
const CanonicalLength = 2.0

// WeightSumTolerance bounds how far a rule's weight sum may drift from CanonicalLength.
const WeightSumTolerance = 1e-6

// Node is one sample position on the canonical interval and its multiplier.
type Node struct {
	X      float64 `json:"x"`
	Weight float64 `json:"weight"`
}

// Rule is an immutable quadrature rule defined on [-1, 1].
// The zero value has no nodes and integrates everything to zero.
type Rule struct {
	label string
	nodes []Node
}

// NewRule validates the nodes and returns a rule holding its own sorted copy of them.
func NewRule(label string, nodes ...Node) (Rule, error) {
	if label == "" {
		return Rule{}, fmt.Errorf("%w: empty label", ErrInvalidRule)
	}
	if len(nodes) == 0 {
		return Rule{}, fmt.Errorf("%w: %q has no nodes", ErrInvalidRule, label)
	}

	p := slices.Clone(nodes)
	slices.SortFunc(p, func(a, b Node) int {
		return cmp.Compare(a.X, b.X)
	})

	for i, n := range p {
		if math.IsNaN(n.X) || n.X < -1 || n.X > 1 {
			return Rule{}, fmt.Errorf("%w: %q node %v outside [-1, 1]", ErrInvalidRule, label, n.X)
		}
		if math.IsNaN(n.Weight) || math.IsInf(n.Weight, 0) || n.Weight <= 0 {
			return Rule{}, fmt.Errorf("%w: %q weight %v at x=%v", ErrInvalidRule, label, n.Weight, n.X)
		}
		if i > 0 && p[i-1].X == n.X {
			return Rule{}, fmt.Errorf("%w: %q repeats node %v", ErrInvalidRule, label, n.X)
		}
	}

	r := Rule{label: label, nodes: p}
	if s := r.WeightSum(); math.Abs(s-CanonicalLength) > WeightSumTolerance {
		return Rule{}, fmt.Errorf("%w: %q weights sum to %v, want %v", ErrInvalidRule, label, s, CanonicalLength)
	}
	return r, nil
}

// MustRule is NewRule for tables known to be valid at compile time.
func MustRule(label string, nodes ...Node) Rule {
	r, err := NewRule(label, nodes...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rule) Label() string {
	return r.label
}

// Len is the node count, which is also the Gauss–Legendre order of the rule.
func (r Rule) Len() int {
	return len(r.nodes)
}

// Degree is the highest polynomial degree the rule integrates exactly.
func (r Rule) Degree() int {
	return 2*len(r.nodes) - 1
}

// Nodes returns a copy of the nodes in ascending X.
func (r Rule) Nodes() []Node {
	return slices.Clone(r.nodes)
}

// WeightSum adds the weights with extended precision so that the check against
// CanonicalLength sees the table and not the accumulation order.
func (r Rule) WeightSum() float64 {
	sum := new(big.Float).SetPrec(128)
	for _, n := range r.nodes {
		sum.Add(sum, new(big.Float).SetFloat64(n.Weight))
	}
	s, _ := sum.Float64()
	return s
}

func (r Rule) String() string {
	return fmt.Sprintf("%s%v", r.label, r.nodes)
}

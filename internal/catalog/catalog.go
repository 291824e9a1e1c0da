// Package catalog holds integrands with known closed-form integrals, used to
// compare how the quadrature error falls as rules gain nodes.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/Maxime2/gaussquad"
)

var ErrUnknownCase = errors.New("catalog: unknown case")

// Case is an integrand, its interval and the exact value of the integral.
type Case struct {
	Name     string
	F        gaussquad.Func
	Interval gaussquad.Interval
	Exact    float64
}

func (c Case) Evaluate(rules []gaussquad.Rule) ([]gaussquad.Result, error) {
	return gaussquad.EvaluateAll(rules, c.F, c.Interval, c.Exact)
}

// All returns the demo cases in presentation order.
func All() []Case {
	sin := func(x float64) float64 { return math.Sin(x) }
	return []Case{
		{"y=1", func(float64) float64 { return 1 }, gaussquad.Canonical, 2},
		{"y=x", func(x float64) float64 { return x }, gaussquad.Canonical, 0},
		{"y=x*x", func(x float64) float64 { return x * x }, gaussquad.Canonical, 2.0 / 3.0},
		{"y=x*x*x", func(x float64) float64 { return x * x * x }, gaussquad.Canonical, 0},
		{"y=x*x*x*x", func(x float64) float64 { return x * x * x * x }, gaussquad.Canonical, 0.4},
		{"y=x*x*x*x*x", func(x float64) float64 { return x * x * x * x * x }, gaussquad.Canonical, 0},
		{"y=x*x*x*x*x*x", func(x float64) float64 { return x * x * x * x * x * x }, gaussquad.Canonical, 2.0 / 7.0},
		{"y=5x^2+3x+2", func(x float64) float64 { return 5*x*x + 3*x + 2 }, gaussquad.Canonical, 22.0 / 3.0},
		{"y=4x^4-2x^3+5x^2+3x+2", func(x float64) float64 {
			return 4*x*x*x*x - 2*x*x*x + 5*x*x + 3*x + 2
		}, gaussquad.Canonical, 134.0 / 15.0},
		{"y=sin(x)", sin, gaussquad.Canonical, 0},
		{"y=sin(x)*sin(x)", func(x float64) float64 { return math.Sin(x) * math.Sin(x) }, gaussquad.Canonical, 1 - math.Sin(2)/2},
		{"y=sin(x) from 0 to pi", sin, gaussquad.Interval{A: 0, B: math.Pi}, 2},
	}
}

func Names() []string {
	cases := All()
	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Name
	}
	return names
}

// Lookup finds a case by name.
func Lookup(name string) (Case, error) {
	cases := All()
	i := slices.IndexFunc(cases, func(c Case) bool { return c.Name == name })
	if i < 0 {
		return Case{}, fmt.Errorf("%w: %q", ErrUnknownCase, name)
	}
	return cases[i], nil
}

// Select resolves names in order; no names selects every case.
func Select(names ...string) ([]Case, error) {
	if len(names) == 0 {
		return All(), nil
	}
	cases := make([]Case, 0, len(names))
	for _, name := range names {
		c, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// Primitive pairs a function with one of its antiderivatives.
type Primitive struct {
	F              gaussquad.Func
	Antiderivative func(x float64) float64
}

// Definite is the exact integral over iv.
func (p Primitive) Definite(iv gaussquad.Interval) float64 {
	return p.Antiderivative(iv.B) - p.Antiderivative(iv.A)
}

// Polynomial builds c[0] + c[1]x + c[2]x^2 + ... evaluated by Horner's rule.
func Polynomial(c ...float64) Primitive {
	c = slices.Clone(c)
	return Primitive{
		F: func(x float64) float64 {
			var y float64
			for i := len(c) - 1; i >= 0; i-- {
				y = y*x + c[i]
			}
			return y
		},
		Antiderivative: func(x float64) float64 {
			var y float64
			for i := len(c) - 1; i >= 0; i-- {
				y = y*x + c[i]/float64(i+1)
			}
			return y * x
		},
	}
}

var elementary = map[string]Primitive{
	"sin": {F: math.Sin, Antiderivative: func(x float64) float64 { return -math.Cos(x) }},
	"cos": {F: math.Cos, Antiderivative: math.Sin},
	"exp": {F: math.Exp, Antiderivative: math.Exp},
	"sin2": {
		F:              func(x float64) float64 { return math.Sin(x) * math.Sin(x) },
		Antiderivative: func(x float64) float64 { return x/2 - math.Sin(2*x)/4 },
	},
	"gauss": {
		F:              func(x float64) float64 { return math.Exp(-x * x) },
		Antiderivative: func(x float64) float64 { return math.Sqrt(math.Pi) / 2 * math.Erf(x) },
	},
}

// Expression resolves "poly" with its coefficients or one of the elementary names.
func Expression(name string, coeffs []float64) (Primitive, error) {
	if name == "poly" {
		if len(coeffs) == 0 {
			return Primitive{}, errors.New("catalog: poly needs at least one coefficient")
		}
		return Polynomial(coeffs...), nil
	}
	p, found := elementary[name]
	if !found {
		return Primitive{}, fmt.Errorf("%w: expression %q, want poly or one of %s",
			ErrUnknownCase, name, strings.Join(ExpressionNames(), ", "))
	}
	return p, nil
}

func ExpressionNames() []string {
	names := []string{"poly"}
	for name := range elementary {
		names = append(names, name)
	}
	slices.Sort(names[1:])
	return names
}

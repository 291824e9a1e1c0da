package gaussquad

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate/quad"
)

func monomial(d int) Func {
	return func(x float64) float64 {
		return math.Pow(x, float64(d))
	}
}

func monomialIntegral(d int, iv Interval) float64 {
	p := float64(d + 1)
	return (math.Pow(iv.B, p) - math.Pow(iv.A, p)) / p
}

func TestIntegrate_ExactForPolynomialsUpToDegree(t *testing.T) {
	intervals := []Interval{Canonical, {A: 0, B: 3}, {A: -2.5, B: 0.5}}
	for _, r := range LegendreRules() {
		for d := 0; d <= r.Degree(); d++ {
			for _, iv := range intervals {
				name := fmt.Sprintf("%s/x^%d/[%v,%v]", r.Label(), d, iv.A, iv.B)
				t.Run(name, func(t *testing.T) {
					got, err := Integrate(r, monomial(d), iv)
					require.NoError(t, err)
					want := monomialIntegral(d, iv)
					assert.True(t, scalar.EqualWithinAbsOrRel(got, want, 1e-12, 1e-12),
						"got %v, want %v", got, want)
				})
			}
		}
	}
}

func TestIntegrate_NotExactPastDegree(t *testing.T) {
	for _, r := range LegendreRules() {
		d := r.Degree() + 1
		got, err := Integrate(r, monomial(d), Canonical)
		require.NoError(t, err)
		assert.Greater(t, math.Abs(got-monomialIntegral(d, Canonical)), 1e-6, r.Label())
	}
}

func TestIntegrate_Constant(t *testing.T) {
	const c = 3.5
	intervals := []Interval{Canonical, {A: 0, B: 1}, {A: -100, B: 250}, {A: 1e-3, B: 2e-3}}
	for _, r := range LegendreRules() {
		for _, iv := range intervals {
			got, err := Integrate(r, Func(func(float64) float64 { return c }), iv)
			require.NoError(t, err)
			want := c * (iv.B - iv.A)
			assert.InDelta(t, want, got, 1e-12*math.Abs(want), "%s on %v", r.Label(), iv)
		}
	}
}

func TestIntegrate_MatchesGonumLegendre(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"exp":   math.Exp,
		"sin":   math.Sin,
		"1/1+x": func(x float64) float64 { return 1 / (1 + x*x) },
	}
	iv := Interval{A: -3, B: 2}
	for _, r := range LegendreRules() {
		for name, f := range funcs {
			got, err := Integrate(r, Func(f), iv)
			require.NoError(t, err)
			want := quad.Fixed(f, iv.A, iv.B, r.Len(), quad.Legendre{}, 0)
			assert.True(t, scalar.EqualWithinAbsOrRel(got, want, 1e-12, 1e-12),
				"%s %s: got %v, gonum %v", r.Label(), name, got, want)
		}
	}
}

func TestIntegrate_SamplesMappedNodesInOrder(t *testing.T) {
	r := MustRule(Legendre3, legendre3...)
	var seen []float64
	f := FallibleFunc(func(x float64) (float64, error) {
		seen = append(seen, x)
		return 1, nil
	})

	_, err := Integrate(r, f, Interval{A: 0, B: 2})
	require.NoError(t, err)

	require.Len(t, seen, 3)
	assert.True(t, slices.IsSorted(seen))
	assert.InDelta(t, 1-0.7745966692414834, seen[0], 1e-15)
	assert.Equal(t, 1.0, seen[1])
	assert.InDelta(t, 1+0.7745966692414834, seen[2], 1e-15)
}

func TestIntegrate_InvalidInterval(t *testing.T) {
	r := MustRule(Legendre2, legendre2...)
	bad := []Interval{
		{A: 1, B: 0},
		{A: 1, B: 1},
		{A: math.NaN(), B: 1},
		{A: 0, B: math.Inf(1)},
		{A: math.Inf(-1), B: 0},
	}
	for _, iv := range bad {
		calls := 0
		f := Func(func(x float64) float64 { calls++; return x })

		v, err := Integrate(r, f, iv)
		require.Error(t, err, "%v", iv)
		assert.ErrorIs(t, err, ErrInvalidInterval)
		var ie *InvalidIntervalError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, 0.0, v)
		assert.Zero(t, calls, "integrand must not be sampled")
	}
}

func TestIntegrate_PropagatesIntegrandError(t *testing.T) {
	errDomain := errors.New("outside domain")
	f := FallibleFunc(func(x float64) (float64, error) {
		if x > 0 {
			return 0, errDomain
		}
		return x, nil
	})

	_, err := Integrate(MustRule(Legendre4, legendre4...), f, Canonical)
	assert.True(t, err == errDomain, "error should be returned unwrapped, got %v", err)

	results, err := EvaluateAll(LegendreRules(), f, Canonical, 0)
	assert.True(t, err == errDomain)
	assert.Nil(t, results)
}

func TestIntegrate_BoundsNearMaxFloat(t *testing.T) {
	r := MustRule(Legendre5, legendre5...)

	got, err := Integrate(r, Func(func(x float64) float64 { return 1 / x }), Interval{A: 1e308, B: 1.7e308})
	require.NoError(t, err)
	assert.InDelta(t, math.Log(1.7), got, 1e-6)

	got, err = Integrate(r, Func(func(x float64) float64 { return 1 / (1 + x*x) }), Interval{A: -1e308, B: 1e308})
	require.NoError(t, err)
	assert.False(t, math.IsNaN(got) || math.IsInf(got, 0), "got %v", got)
	assert.Greater(t, got, 0.0)
}

func TestIntegrate_DoesNotRecoverPanics(t *testing.T) {
	f := Func(func(float64) float64 { panic("boom") })
	assert.PanicsWithValue(t, "boom", func() {
		_, _ = Integrate(MustRule(Legendre2, legendre2...), f, Canonical)
	})
}

func TestIntegrate_ZeroRule(t *testing.T) {
	got, err := Integrate(Rule{}, Func(math.Exp), Canonical)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestEvaluate_Square(t *testing.T) {
	for _, r := range LegendreRules() {
		res, err := Evaluate(r, monomial(2), Canonical, 2.0/3.0)
		require.NoError(t, err)
		assert.Equal(t, r.Label(), res.Rule)
		assert.Equal(t, r.Len(), res.Nodes)
		assert.Less(t, res.AbsError, 1e-6)
	}
}

func TestEvaluate_FourthPower(t *testing.T) {
	results, err := EvaluateAll(LegendreRules(), monomial(4), Canonical, 0.4)
	require.NoError(t, err)
	require.Len(t, results, 4)

	// two nodes give 2/9
	assert.InDelta(t, 2.0/9.0, results[0].Value, 1e-12)
	assert.Greater(t, results[0].AbsError, 0.1)
	for _, res := range results[1:] {
		assert.Less(t, res.AbsError, 1e-6, res.Rule)
	}
}

func TestEvaluateAll_SineErrorShrinks(t *testing.T) {
	cases := []struct {
		name  string
		f     Func
		iv    Interval
		exact float64
	}{
		{"sin on [0,pi]", math.Sin, Interval{A: 0, B: math.Pi}, 2},
		{"sin^2 on [-1,1]", func(x float64) float64 { return math.Sin(x) * math.Sin(x) }, Canonical, 1 - math.Sin(2)/2},
		{"exp on [0,1]", math.Exp, Interval{A: 0, B: 1}, math.E - 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results, err := EvaluateAll(LegendreRules(), tc.f, tc.iv, tc.exact)
			require.NoError(t, err)
			for i := 1; i < len(results); i++ {
				assert.LessOrEqual(t, results[i].AbsError, results[i-1].AbsError,
					"%s vs %s", results[i].Rule, results[i-1].Rule)
			}
			assert.Less(t, results[len(results)-1].AbsError, 1e-3)
		})
	}
}

func TestEvaluateAll_KeepsRuleOrder(t *testing.T) {
	rules := LegendreRules()
	slices.Reverse(rules)

	results, err := EvaluateAll(rules, Func(math.Cos), Interval{A: -1, B: 4}, math.Sin(4)+math.Sin(1))
	require.NoError(t, err)

	var got []string
	for _, res := range results {
		got = append(got, res.Rule)
	}
	want := []string{Legendre5, Legendre4, Legendre3, Legendre2}
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("rule order (-got +want):\n%s", diff)
	}
}

func TestEvaluateAll_Deterministic(t *testing.T) {
	f := Func(func(x float64) float64 { return math.Exp(-x * x) })
	iv := Interval{A: -2, B: 3}

	first, err := EvaluateAll(LegendreRules(), f, iv, 1.7715)
	require.NoError(t, err)
	second, err := EvaluateAll(LegendreRules(), f, iv, 1.7715)
	require.NoError(t, err)

	if diff := pretty.Compare(first, second); diff != "" {
		t.Errorf("repeat evaluation differs:\n%s", diff)
	}
}

func TestEvaluateAll_InvalidInterval(t *testing.T) {
	results, err := EvaluateAll(LegendreRules(), Func(math.Sin), Interval{A: 1, B: 0}, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.Nil(t, results)
}

func TestEvaluateAll_NoRules(t *testing.T) {
	results, err := EvaluateAll(nil, Func(math.Sin), Canonical, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

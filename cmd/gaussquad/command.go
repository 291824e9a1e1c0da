package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/Maxime2/gaussquad"
	"github.com/Maxime2/gaussquad/internal/catalog"
	"github.com/Maxime2/gaussquad/internal/report"
)

const envPrefix = "GAUSSQUAD"

type options struct {
	v   *viper.Viper
	out io.Writer
}

// NewCommand builds the command tree writing reports to out.
func NewCommand(out io.Writer) *cobra.Command {
	o := &options{v: viper.New(), out: out}
	o.v.SetEnvPrefix(envPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "gaussquad",
		Short:         "Compare Gauss–Legendre quadrature rules against exact integrals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.bind(cmd.Flags())
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML or JSON file with flag values")
	flags.String("rules-file", "", "YAML or JSON rule table to use instead of the built-in Legendre rules")
	flags.StringP("output", "o", string(report.Text), "output format: text, json or yaml")
	flags.Int("precision", report.DefaultPrecision, "decimals in text output")

	root.AddCommand(
		newRulesCommand(o),
		newRunCommand(o),
		newIntegrateCommand(o),
	)
	return root
}

func (o *options) bind(flags *pflag.FlagSet) error {
	if err := o.v.BindPFlags(flags); err != nil {
		return err
	}
	if path := o.v.GetString("config"); path != "" {
		o.v.SetConfigFile(path)
		if err := o.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		klog.V(1).InfoS("Loaded config", "path", path)
	}
	return nil
}

func (o *options) format() (report.Format, error) {
	return report.ParseFormat(o.v.GetString("output"))
}

func (o *options) store() (*gaussquad.Store, error) {
	path := o.v.GetString("rules-file")
	if path == "" {
		klog.V(1).InfoS("Using built-in Legendre rules")
		return gaussquad.NewLegendreStore(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := gaussquad.LoadStore(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	klog.V(1).InfoS("Loaded rule table", "path", path, "rules", s.Names())
	return s, nil
}

func (o *options) rules() ([]gaussquad.Rule, error) {
	s, err := o.store()
	if err != nil {
		return nil, err
	}
	return s.Select(o.stringSlice("rule")...)
}

// splitList turns an environment or config string such as "2-point, 3-point" into
// its comma separated items. Case names may contain spaces, so commas are the only separator.
func splitList(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "["), "]")
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (o *options) stringSlice(key string) []string {
	return cast.ToStringSlice(splitList(o.v.Get(key)))
}

// float64Slice prefers the parsed flag: viper renders float slice flags as strings
// with six decimals.
func (o *options) float64Slice(flags *pflag.FlagSet, key string) ([]float64, error) {
	if f := flags.Lookup(key); f != nil && f.Changed {
		return flags.GetFloat64Slice(key)
	}
	raw := o.v.Get(key)
	if raw == nil {
		return nil, nil
	}
	values, err := cast.ToFloat64SliceE(splitList(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return values, nil
}

func newRulesCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the quadrature rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := o.format()
			if err != nil {
				return err
			}
			s, err := o.store()
			if err != nil {
				return err
			}
			return report.WriteRules(o.out, format, s)
		},
	}
}

func newRunCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate the built-in integrands with every selected rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := o.format()
			if err != nil {
				return err
			}
			rules, err := o.rules()
			if err != nil {
				return err
			}
			cases, err := catalog.Select(o.stringSlice("case")...)
			if err != nil {
				return err
			}

			reports := make([]report.Report, 0, len(cases))
			for _, c := range cases {
				klog.V(2).InfoS("Evaluating", "case", c.Name, "a", c.Interval.A, "b", c.Interval.B, "rules", len(rules))
				results, err := c.Evaluate(rules)
				if err != nil {
					return fmt.Errorf("%s: %w", c.Name, err)
				}
				reports = append(reports, report.Report{
					Case:     c.Name,
					Interval: c.Interval,
					Exact:    c.Exact,
					Results:  results,
				})
			}
			return report.Write(o.out, format, o.v.GetInt("precision"), reports...)
		},
	}
	cmd.Flags().StringSlice("case", nil, "integrand to evaluate, repeatable (default all): "+strings.Join(catalog.Names(), "; "))
	cmd.Flags().StringSlice("rule", nil, "rule to apply, repeatable (default all)")
	return cmd
}

func newIntegrateCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate a polynomial or elementary function over [a, b]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := o.format()
			if err != nil {
				return err
			}
			rules, err := o.rules()
			if err != nil {
				return err
			}
			coeffs, err := o.float64Slice(cmd.Flags(), "coeffs")
			if err != nil {
				return err
			}
			name := o.v.GetString("expr")
			p, err := catalog.Expression(name, coeffs)
			if err != nil {
				return err
			}

			iv := gaussquad.Interval{A: o.v.GetFloat64("a"), B: o.v.GetFloat64("b")}
			exact := p.Definite(iv)
			if o.v.IsSet("exact") {
				exact = o.v.GetFloat64("exact")
			}
			klog.V(2).InfoS("Integrating", "expr", name, "coeffs", coeffs, "a", iv.A, "b", iv.B, "exact", exact)

			results, err := gaussquad.EvaluateAll(rules, p.F, iv, exact)
			if err != nil {
				return err
			}
			if name == "poly" {
				name = fmt.Sprintf("poly%v", coeffs)
			}
			return report.Write(o.out, format, o.v.GetInt("precision"), report.Report{
				Case:     fmt.Sprintf("y=%s from %v to %v", name, iv.A, iv.B),
				Interval: iv,
				Exact:    exact,
				Results:  results,
			})
		},
	}
	flags := cmd.Flags()
	flags.String("expr", "poly", "integrand: "+strings.Join(catalog.ExpressionNames(), ", "))
	flags.Float64Slice("coeffs", nil, "polynomial coefficients, constant term first")
	flags.Float64("a", -1, "lower bound")
	flags.Float64("b", 1, "upper bound")
	flags.Float64("exact", 0, "exact value of the integral (default computed from the antiderivative)")
	flags.StringSlice("rule", nil, "rule to apply, repeatable (default all)")
	return cmd
}

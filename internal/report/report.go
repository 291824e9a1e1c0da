// Package report renders evaluation results and rule tables for people and for tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/Maxime2/gaussquad"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// DefaultPrecision matches the six decimals of printf's %f.
const DefaultPrecision = 6

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	case "":
		return Text, nil
	}
	return "", fmt.Errorf("report: unknown output format %q, want text, json or yaml", s)
}

// Report is the comparison of every selected rule on one integrand.
type Report struct {
	Case     string             `json:"case"`
	Interval gaussquad.Interval `json:"interval"`
	Exact    float64            `json:"exact"`
	Results  []gaussquad.Result `json:"results"`
}

// Write renders the reports. Text output prints one block per report, the rule
// value followed by its absolute error in parentheses.
func Write(w io.Writer, format Format, precision int, reports ...Report) error {
	switch format {
	case Text:
		return writeText(w, precision, reports)
	case JSON:
		return writeJSON(w, reports)
	case YAML:
		return writeYAML(w, reports)
	}
	return fmt.Errorf("report: unknown output format %q", format)
}

func writeText(w io.Writer, precision int, reports []Report) error {
	if precision < 0 {
		precision = DefaultPrecision
	}
	for _, r := range reports {
		if _, err := fmt.Fprintf(w, "%s\n", r.Case); err != nil {
			return err
		}
		for _, res := range r.Results {
			if _, err := fmt.Fprintf(w, "  %s: %.*f (%.*f)\n", res.Rule, precision, res.Value, precision, res.AbsError); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteRules lists the rules of a store.
func WriteRules(w io.Writer, format Format, s *gaussquad.Store) error {
	switch format {
	case JSON:
		return writeJSON(w, s)
	case YAML:
		return s.WriteYAML(w)
	case Text:
		for _, r := range s.Rules() {
			if _, err := fmt.Fprintf(w, "%s (%d nodes, exact to degree %d)\n", r.Label(), r.Len(), r.Degree()); err != nil {
				return err
			}
			for _, n := range r.Nodes() {
				if _, err := fmt.Fprintf(w, "  x=% .16f  w=%.16f\n", n.X, n.Weight); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return fmt.Errorf("report: unknown output format %q", format)
}

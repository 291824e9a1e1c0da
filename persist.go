package gaussquad

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// RuleDump is a serializable representation of a Rule.
type RuleDump struct {
	Label string `json:"label"`
	Nodes []Node `json:"nodes"`
}

// Dump is a serializable representation of a Store.
type Dump struct {
	Rules []RuleDump `json:"rules"`
}

// Dump generates a serializable dump for a rule.
func (r Rule) Dump() *RuleDump {
	return &RuleDump{
		Label: r.label,
		Nodes: r.Nodes(),
	}
}

// RuleFromDump restores a rule from a dump.
// The nodes are validated and sorted by X, as they may come from an untrusted source.
func RuleFromDump(d *RuleDump) (Rule, error) {
	return NewRule(d.Label, d.Nodes...)
}

// MarshalJSON implements the json.Marshaler interface for Rule.
func (r Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Rule.
func (r *Rule) UnmarshalJSON(bytes []byte) error {
	var dump RuleDump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return err
	}
	rule, err := RuleFromDump(&dump)
	if err != nil {
		return err
	}
	*r = rule
	return nil
}

// Dump generates a serializable dump for a store, rules in ascending node count.
func (s *Store) Dump() *Dump {
	d := &Dump{Rules: make([]RuleDump, len(s.rules))}
	for i, r := range s.rules {
		d.Rules[i] = *r.Dump()
	}
	return d
}

// FromDump builds a store from a dump.
func FromDump(d *Dump) (*Store, error) {
	rules := make([]Rule, 0, len(d.Rules))
	for i := range d.Rules {
		r, err := RuleFromDump(&d.Rules[i])
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, r)
	}
	return NewStore(rules...)
}

// MarshalJSON implements the json.Marshaler interface for Store.
func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Store.
func (s *Store) UnmarshalJSON(bytes []byte) error {
	var dump Dump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return err
	}
	store, err := FromDump(&dump)
	if err != nil {
		return err
	}
	*s = *store
	return nil
}

// LoadStore reads a rule table written as YAML or JSON.
func LoadStore(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var dump Dump
	if err := yaml.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("decode rule table: %w", err)
	}
	return FromDump(&dump)
}

// WriteYAML writes the store in the format LoadStore reads.
func (s *Store) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(s.Dump())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

package gaussquad

import (
	"cmp"
	"fmt"
	"slices"
)

// Store is a read-only set of named rules. It is built once and may be shared
// between goroutines without locking.
type Store struct {
	rules  []Rule
	byName map[string]int
}

// NewStore orders the rules by ascending node count, keeping the given order between
// rules of equal size.
func NewStore(rules ...Rule) (*Store, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyStore
	}

	s := &Store{
		rules:  slices.Clone(rules),
		byName: make(map[string]int, len(rules)),
	}
	slices.SortStableFunc(s.rules, func(a, b Rule) int {
		return cmp.Compare(a.Len(), b.Len())
	})
	for i, r := range s.rules {
		if r.Len() == 0 {
			return nil, fmt.Errorf("%w: %q has no nodes", ErrInvalidRule, r.label)
		}
		if _, found := s.byName[r.label]; found {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRule, r.label)
		}
		s.byName[r.label] = i
	}
	return s, nil
}

// Rule looks a rule up by label.
func (s *Store) Rule(name string) (Rule, error) {
	i, found := s.byName[name]
	if !found {
		return Rule{}, &UnknownRuleError{Name: name}
	}
	return s.rules[i], nil
}

// Rules returns every rule in ascending node count.
func (s *Store) Rules() []Rule {
	return slices.Clone(s.rules)
}

// Select resolves names in the order given. An empty list selects every rule.
func (s *Store) Select(names ...string) ([]Rule, error) {
	if len(names) == 0 {
		return s.Rules(), nil
	}
	rules := make([]Rule, 0, len(names))
	for _, name := range names {
		r, err := s.Rule(name)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func (s *Store) Names() []string {
	names := make([]string, len(s.rules))
	for i, r := range s.rules {
		names[i] = r.label
	}
	return names
}

func (s *Store) Len() int {
	return len(s.rules)
}

package models

import "strings"

// ConditionSet is an ordered set of weather condition labels. Labels keep
// their first-seen order so that rendering and tests stay deterministic.
type ConditionSet struct {
	labels []string
	seen   map[string]struct{}
}

func NewConditionSet(labels ...string) *ConditionSet {
	s := &ConditionSet{
		seen: make(map[string]struct{}),
	}
	s.Add(labels...)
	return s
}

func (s *ConditionSet) Add(labels ...string) {
	for _, label := range labels {
		if label == "" {
			continue
		}
		if _, ok := s.seen[label]; ok {
			continue
		}
		s.seen[label] = struct{}{}
		s.labels = append(s.labels, label)
	}
}

func (s *ConditionSet) Has(label string) bool {
	_, ok := s.seen[label]
	return ok
}

func (s *ConditionSet) Len() int {
	return len(s.labels)
}

// Labels returns a copy of the labels in insertion order.
func (s *ConditionSet) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

func (s *ConditionSet) Join(sep string) string {
	return strings.Join(s.labels, sep)
}

package pulse

import "sort"

// Tags is an immutable set of free-form string labels. Duplicates are
// removed at construction and insertion order is not preserved; List
// always returns labels in sorted order so two tag sets with the same
// members compare equal.
type Tags struct {
	labels []string
}

// NewTags builds a tag set from the given labels, dropping duplicates
// and empty strings.
func NewTags(labels ...string) Tags {
	if len(labels) == 0 {
		return Tags{}
	}
	seen := make(map[string]struct{}, len(labels))
	unique := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		unique = append(unique, l)
	}
	sort.Strings(unique)
	return Tags{labels: unique}
}

// Contains reports whether the set includes the given label.
func (t Tags) Contains(label string) bool {
	i := sort.SearchStrings(t.labels, label)
	return i < len(t.labels) && t.labels[i] == label
}

// List returns the labels in sorted order. The returned slice is a copy.
func (t Tags) List() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// Len returns the number of labels in the set.
func (t Tags) Len() int {
	return len(t.labels)
}

// With returns a new tag set containing this set's labels plus the given
// ones. The receiver is unchanged.
func (t Tags) With(labels ...string) Tags {
	if len(labels) == 0 {
		return t
	}
	return NewTags(append(t.List(), labels...)...)
}

package dto

import "strings"

// OptionSet is an ordered list of accepted answers. Matching is
// case-insensitive and exact.
type OptionSet struct {
	names []string
}

func NewOptionSet(names ...string) OptionSet {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(name)))
	}
	return OptionSet{names: normalized}
}

// Index returns the position of text in the set or -1.
func (o OptionSet) Index(text string) int {
	needle := strings.ToLower(strings.TrimSpace(text))
	for i, name := range o.names {
		if name == needle {
			return i
		}
	}
	return -1
}

func (o OptionSet) Len() int { return len(o.names) }

func (o OptionSet) At(i int) string { return o.names[i] }

func (o OptionSet) Names() []string {
	out := make([]string, len(o.names))
	copy(out, o.names)
	return out
}

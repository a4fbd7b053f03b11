package parser

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix is a literal keyword ending in '/' that introduces a field value, e.g. "start/"
type Prefix string

func (p Prefix) String() string {
	return string(p)
}

// ArgumentMultimap is the result of tokenizing an argument string: the
// preamble plus every value seen for each recognised prefix, in input order.
type ArgumentMultimap struct {
	preamble  string
	values    map[Prefix][]string
	positions map[Prefix][]int
}

type occurrence struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into a preamble and prefix values. A prefix is only
// recognised at the start of args or directly after a whitespace rune.
// Tokenize never fails; structural problems are left to the caller.
func Tokenize(args string, prefixes ...Prefix) *ArgumentMultimap {
	var found []occurrence
	for _, p := range prefixes {
		found = append(found, findOccurrences(args, p)...)
	}
	slices.SortFunc(found, func(a, b occurrence) int {
		return a.start - b.start
	})

	m := &ArgumentMultimap{
		values:    make(map[Prefix][]string),
		positions: make(map[Prefix][]int),
	}

	if len(found) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}

	m.preamble = strings.TrimSpace(args[:found[0].start])
	for i, occ := range found {
		end := len(args)
		if i+1 < len(found) {
			end = found[i+1].start
		}
		value := strings.TrimSpace(args[occ.start+len(occ.prefix) : end])
		m.values[occ.prefix] = append(m.values[occ.prefix], value)
		m.positions[occ.prefix] = append(m.positions[occ.prefix], occ.start)
	}
	return m
}

func findOccurrences(args string, prefix Prefix) []occurrence {
	var out []occurrence
	if prefix == "" {
		return out
	}

	from := 0
	for from < len(args) {
		idx := strings.Index(args[from:], string(prefix))
		if idx < 0 {
			break
		}
		idx += from
		if idx == 0 || precededBySpace(args, idx) {
			out = append(out, occurrence{prefix: prefix, start: idx})
		}
		from = idx + len(prefix)
	}
	return out
}

func precededBySpace(s string, idx int) bool {
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return unicode.IsSpace(r)
}

// Preamble is the trimmed text before the first recognised prefix
func (m *ArgumentMultimap) Preamble() string {
	return m.preamble
}

// Value returns the last value given for p
func (m *ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p, in input order
func (m *ArgumentMultimap) AllValues(p Prefix) []string {
	return slices.Clone(m.values[p])
}

func (m *ArgumentMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

func (m *ArgumentMultimap) Count(p Prefix) int {
	return len(m.values[p])
}

// FirstPosition is the byte offset of the first occurrence of p, or -1
func (m *ArgumentMultimap) FirstPosition(p Prefix) int {
	ps := m.positions[p]
	if len(ps) == 0 {
		return -1
	}
	return ps[0]
}

// ArePrefixesPresent checks that every prefix occurs at least once
func (m *ArgumentMultimap) ArePrefixesPresent(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if !m.Has(p) {
			return false
		}
	}
	return true
}

// InOrder checks that the first occurrences of prefixes appear in the given order
func (m *ArgumentMultimap) InOrder(prefixes ...Prefix) bool {
	last := -1
	for _, p := range prefixes {
		pos := m.FirstPosition(p)
		if pos <= last {
			return false
		}
		last = pos
	}
	return true
}

// DuplicatePrefixes returns the prefixes among the given ones that occur more than once
func (m *ArgumentMultimap) DuplicatePrefixes(prefixes ...Prefix) []Prefix {
	var dups []Prefix
	for _, p := range prefixes {
		if m.Count(p) > 1 {
			dups = append(dups, p)
		}
	}
	return dups
}

package parser

import (
	"strings"

	"github.com/pradyuprasad/tp/internal/command"
)

// fieldRule says how often a prefix may appear in a command
type fieldRule int

const (
	fieldRequired fieldRule = iota
	fieldOptional
	fieldRepeatable
	// fieldUnsupported prefixes are recognised only so they can be rejected
	fieldUnsupported
)

type fieldSpec struct {
	prefix Prefix
	rule   fieldRule
}

// grammar describes the prefix layout of one command. check applies the
// structural rules in a fixed order so that exactly one message is produced:
// preamble > presence/order > duplicates > empty or unsupported tags.
type grammar struct {
	usage  string
	fields []fieldSpec

	allowPreamble bool
	// requiredInOrder makes a required prefix appearing out of table order
	// fail the same way as a missing one
	requiredInOrder bool
	// duplicateMessage replaces the generic duplicate-field message
	duplicateMessage string
	// allowTagReset accepts a single empty tag/ meaning "clear all tags"
	allowTagReset bool
}

func (g grammar) prefixes() []Prefix {
	out := make([]Prefix, len(g.fields))
	for i, f := range g.fields {
		out[i] = f.prefix
	}
	return out
}

func (g grammar) withRule(rules ...fieldRule) []Prefix {
	var out []Prefix
	for _, f := range g.fields {
		for _, r := range rules {
			if f.rule == r {
				out = append(out, f.prefix)
				break
			}
		}
	}
	return out
}

func (g grammar) invalidFormat() *ParseError {
	return newParseError(KindMissingOrMisorderedPrefix, command.InvalidFormat(g.usage))
}

// check tokenizes args and enforces the structural rules. Field contents
// are not validated here.
func (g grammar) check(args string) (*ArgumentMultimap, error) {
	m := Tokenize(args, g.prefixes()...)

	if !g.allowPreamble && m.Preamble() != "" {
		return nil, newParseErrorf(KindPreambleNotAllowed, command.MessagePreambleNotAllowed, strings.ToValidUTF8(m.Preamble(), "\uFFFD"))
	}

	required := g.withRule(fieldRequired)
	if !m.ArePrefixesPresent(required...) {
		return nil, g.invalidFormat()
	}
	if g.requiredInOrder && !m.InOrder(required...) {
		return nil, g.invalidFormat()
	}

	if dups := m.DuplicatePrefixes(g.withRule(fieldRequired, fieldOptional)...); len(dups) > 0 {
		if g.duplicateMessage != "" {
			return nil, newParseError(KindDuplicatePrefix, g.duplicateMessage)
		}
		names := make([]string, len(dups))
		for i, d := range dups {
			names[i] = d.String()
		}
		return nil, newParseErrorf(KindDuplicatePrefix, command.MessageDuplicateFields, strings.Join(names, " "))
	}

	for _, p := range g.withRule(fieldUnsupported) {
		if !m.Has(p) {
			continue
		}
		if p == PrefixTag && hasEmptyValue(m.AllValues(p)) {
			return nil, newParseError(KindEmptyTagValue, command.MessageEmptyTag)
		}
		return nil, g.invalidFormat()
	}

	for _, p := range g.withRule(fieldRepeatable) {
		values := m.AllValues(p)
		if p != PrefixTag || !hasEmptyValue(values) {
			continue
		}
		if g.allowTagReset && len(values) == 1 {
			continue
		}
		return nil, newParseError(KindEmptyTagValue, command.MessageEmptyTag)
	}

	return m, nil
}

func hasEmptyValue(values []string) bool {
	for _, v := range values {
		if v == "" {
			return true
		}
	}
	return false
}

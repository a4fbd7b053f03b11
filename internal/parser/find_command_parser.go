package parser

import (
	"github.com/pradyuprasad/tp/internal/command"
	"github.com/pradyuprasad/tp/internal/domain/criteria"
)

var findGrammar = grammar{
	usage: command.FindUsage,
	fields: []fieldSpec{
		{prefix: PrefixName, rule: fieldOptional},
		{prefix: PrefixRole, rule: fieldOptional},
		{prefix: PrefixTag, rule: fieldRepeatable},
	},
}

// FindCommandParser parses "[n/KEYWORD [MORE_KEYWORDS]...] [r/ROLE] [tag/TAG]...".
// At least one criterion is required and every given criterion must match.
type FindCommandParser struct{}

func (FindCommandParser) Parse(args string) (command.Command, error) {
	m, err := findGrammar.check(args)
	if err != nil {
		return nil, err
	}
	if !m.Has(PrefixName) && !m.Has(PrefixRole) && !m.Has(PrefixTag) {
		return nil, findGrammar.invalidFormat()
	}

	var found []criteria.SearchCriteria
	if raw, ok := m.Value(PrefixName); ok {
		keywords, err := ParseKeywords(raw, command.FindUsage)
		if err != nil {
			return nil, err
		}
		found = append(found, criteria.NameSearchCriteria{Keywords: keywords})
	}
	if raw, ok := m.Value(PrefixRole); ok {
		role, err := ParseRole(raw)
		if err != nil {
			return nil, err
		}
		found = append(found, criteria.RoleSearchCriteria{Role: role})
	}
	if m.Has(PrefixTag) {
		tags, err := ParseTags(m.AllValues(PrefixTag))
		if err != nil {
			return nil, err
		}
		found = append(found, criteria.TagSearchCriteria{Tags: tags})
	}

	return command.NewFindCommand(criteria.NewContainsKeywordsPredicate(found...)), nil
}

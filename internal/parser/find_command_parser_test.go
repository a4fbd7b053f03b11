package parser

import (
	"testing"

	"github.com/pradyuprasad/tp/internal/command"
	"github.com/pradyuprasad/tp/internal/domain/criteria"
	"github.com/pradyuprasad/tp/internal/domain/entity"
)

var findParser = FindCommandParser{}

func TestFindParse_success(t *testing.T) {
	assertParseSuccess(t, findParser, " n/Alice \n\t Bob",
		command.NewFindCommand(criteria.NewContainsKeywordsPredicate(
			criteria.NameSearchCriteria{Keywords: []string{"Alice", "Bob"}},
		)))

	assertParseSuccess(t, findParser, " tag/diabetic r/PATIENT n/alice tag/elderly",
		command.NewFindCommand(criteria.NewContainsKeywordsPredicate(
			criteria.NameSearchCriteria{Keywords: []string{"alice"}},
			criteria.RoleSearchCriteria{Role: entity.RolePatient},
			criteria.TagSearchCriteria{Tags: []string{"diabetic", "elderly"}},
		)))
}

func TestFindParse_failures(t *testing.T) {
	invalid := command.InvalidFormat(command.FindUsage)

	assertParseFailure(t, findParser, "", invalid)
	assertParseFailure(t, findParser, " n/", invalid)
	assertParseFailure(t, findParser, "alice",
		"Please do not enter anything before the keywords!\nPlease remove this from your input: alice")
	assertParseFailure(t, findParser, " r/PATIENT r/CAREGIVER",
		"Multiple values specified for the following single-valued field(s): r/")
	assertParseFailure(t, findParser, " n/alice tag/", command.MessageEmptyTag)
	assertParseFailure(t, findParser, " r/nurse", entity.RoleConstraints)
}

package parser

import (
	"github.com/pradyuprasad/tp/internal/command"
	"github.com/pradyuprasad/tp/internal/domain/criteria"
)

var findAppointmentGrammar = grammar{
	usage: command.FindAppointmentUsage,
	fields: []fieldSpec{
		{prefix: PrefixStartDate, rule: fieldRequired},
		{prefix: PrefixStartTime, rule: fieldRequired},
		{prefix: PrefixEndDate, rule: fieldRequired},
		{prefix: PrefixEndTime, rule: fieldRequired},
		{prefix: PrefixTag, rule: fieldUnsupported},
	},
	requiredInOrder:  true,
	duplicateMessage: command.MessageDuplicateDateTimePrefixes,
}

// FindAppointmentCommandParser parses
// "startdate/DATE start/TIME enddate/DATE end/TIME".
type FindAppointmentCommandParser struct{}

func (FindAppointmentCommandParser) Parse(args string) (command.Command, error) {
	m, err := findAppointmentGrammar.check(args)
	if err != nil {
		return nil, err
	}

	window, err := parseAppointmentWindow(m)
	if err != nil {
		return nil, err
	}

	return command.NewFindAppointmentCommand(criteria.NewContainsKeywordsPredicate(window)), nil
}

// parseAppointmentWindow validates the four date/time fields in input order
// and stops at the first failure.
func parseAppointmentWindow(m *ArgumentMultimap) (criteria.AppointmentSearchCriteria, error) {
	var none criteria.AppointmentSearchCriteria

	raw, _ := m.Value(PrefixStartDate)
	startDate, err := ParseDate(raw)
	if err != nil {
		return none, err
	}

	raw, _ = m.Value(PrefixStartTime)
	startTime, err := ParseTime(raw)
	if err != nil {
		return none, err
	}

	raw, _ = m.Value(PrefixEndDate)
	endDate, err := ParseDate(raw)
	if err != nil {
		return none, err
	}

	raw, _ = m.Value(PrefixEndTime)
	endTime, err := ParseTime(raw)
	if err != nil {
		return none, err
	}

	return criteria.NewAppointmentSearchCriteria(startDate, startTime, endDate, endTime), nil
}

package parser

import (
	"github.com/pradyuprasad/tp/internal/command"
	"github.com/pradyuprasad/tp/internal/domain/entity"
)

var addAppointmentGrammar = grammar{
	usage: command.AddAppointmentUsage,
	fields: []fieldSpec{
		{prefix: PrefixStartDate, rule: fieldRequired},
		{prefix: PrefixStartTime, rule: fieldRequired},
		{prefix: PrefixEndDate, rule: fieldRequired},
		{prefix: PrefixEndTime, rule: fieldRequired},
		{prefix: PrefixTag, rule: fieldUnsupported},
	},
	allowPreamble:    true,
	requiredInOrder:  true,
	duplicateMessage: command.MessageDuplicateDateTimePrefixes,
}

// AddAppointmentCommandParser parses
// "INDEX startdate/DATE start/TIME enddate/DATE end/TIME".
type AddAppointmentCommandParser struct{}

func (AddAppointmentCommandParser) Parse(args string) (command.Command, error) {
	m, err := addAppointmentGrammar.check(args)
	if err != nil {
		return nil, err
	}

	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, addAppointmentGrammar.invalidFormat()
	}

	window, err := parseAppointmentWindow(m)
	if err != nil {
		return nil, err
	}

	appt := entity.NewAppointment(window.StartDate, window.StartTime, window.EndDate, window.EndTime)
	return command.NewAddAppointmentCommand(index, appt), nil
}

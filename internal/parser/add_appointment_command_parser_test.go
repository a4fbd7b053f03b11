package parser

import (
	"testing"

	"github.com/pradyuprasad/tp/internal/command"
	"github.com/pradyuprasad/tp/internal/domain/entity"
)

var addAppointmentParser = AddAppointmentCommandParser{}

func TestAddAppointmentParse_success(t *testing.T) {
	assertParseSuccess(t, addAppointmentParser,
		" 2 startdate/30/10/2024 start/14:00 enddate/30/10/2024 end/15:00",
		command.NewAddAppointmentCommand(2,
			entity.NewAppointment(date(30, 10, 2024), clock(14, 0), date(30, 10, 2024), clock(15, 0))))
}

func TestAddAppointmentParse_failures(t *testing.T) {
	invalid := command.InvalidFormat(command.AddAppointmentUsage)

	assertParseFailure(t, addAppointmentParser,
		" startdate/30/10/2024 start/14:00 enddate/30/10/2024 end/15:00", invalid)
	assertParseFailure(t, addAppointmentParser,
		" x startdate/30/10/2024 start/14:00 enddate/30/10/2024 end/15:00", invalid)
	assertParseFailure(t, addAppointmentParser,
		" 1 start/14:00 startdate/30/10/2024 enddate/30/10/2024 end/15:00", invalid)
	assertParseFailure(t, addAppointmentParser,
		" 1 startdate/30/10/2024 start/14:00 start/15:00 enddate/30/10/2024 end/15:00",
		command.MessageDuplicateDateTimePrefixes)
	assertParseFailure(t, addAppointmentParser,
		" 1 startdate/30/10/2024 start/14:00 enddate/30/10/2024 end/15:00 tag/", command.MessageEmptyTag)
	assertParseFailure(t, addAppointmentParser,
		" 1 startdate/30/10/2024 start/25:00 enddate/30/10/2024 end/15:00", command.MessageInvalidTime)
}

package command

import (
	"fmt"
	"strings"

	"github.com/pradyuprasad/tp/internal/domain/entity"
)

// User-facing messages shared by the parsers and commands
const (
	MessageInvalidCommandFormat        = "Invalid command format! \n%s"
	MessageUnknownCommand              = "Unknown command"
	MessagePreambleNotAllowed          = "Please do not enter anything before the keywords!\nPlease remove this from your input: %s"
	MessageDuplicateFields             = "Multiple values specified for the following single-valued field(s): %s"
	MessageDuplicateDateTimePrefixes   = "Duplicate prefixes detected for date and/or time fields."
	MessageEmptyTag                    = "Tags cannot be empty or invalid."
	MessageInvalidDate                 = "Invalid date format! Please use dd/MM/yyyy, e.g. 30/10/2024."
	MessageInvalidTime                 = "Invalid time format! Please use HH:mm in 24-hour time, e.g. 14:00."
	MessageInvalidIndex                = "Index is not a non-zero unsigned integer."
	MessageInvalidPersonDisplayedIndex = "The person index provided is invalid"
	MessagePersonsListedOverview       = "%d persons listed!"
	MessageDuplicatePerson             = "This person already exists in the address book"
)

// InvalidFormat renders MessageInvalidCommandFormat for a command's usage text
func InvalidFormat(usage string) string {
	return fmt.Sprintf(MessageInvalidCommandFormat, usage)
}

// FormatPerson renders a person for command feedback
func FormatPerson(p entity.Person) string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	sb.WriteString("; Phone: ")
	sb.WriteString(p.Phone)
	sb.WriteString("; Email: ")
	sb.WriteString(p.Email)
	sb.WriteString("; Address: ")
	sb.WriteString(p.Address)
	sb.WriteString("; Role: ")
	sb.WriteString(p.Role.String())
	sb.WriteString("; Tags: ")
	for _, t := range p.Tags {
		sb.WriteString("[" + t + "]")
	}
	return sb.String()
}

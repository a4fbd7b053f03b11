package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/pradyuprasad/tp/internal/domain/entity"
	"github.com/pradyuprasad/tp/internal/usecase"
)

const (
	MessageAddAppointmentSuccess  = "New appointment added for %s: %s"
	MessageAppointmentEndsTooSoon = "An appointment must end after it starts."
	MessageDuplicateAppointment   = "This appointment already exists for this person."
)

// AddAppointmentCommand books an appointment for the person at a one-based
// index of the displayed list
type AddAppointmentCommand struct {
	index       int
	appointment entity.Appointment
}

func NewAddAppointmentCommand(index int, appt entity.Appointment) AddAppointmentCommand {
	return AddAppointmentCommand{index: index, appointment: appt}
}

func (c AddAppointmentCommand) Execute(ctx context.Context, book usecase.AddressBookUsecase) (*CommandResult, error) {
	if !c.appointment.End.After(c.appointment.Start) {
		return nil, &Error{Message: MessageAppointmentEndsTooSoon}
	}

	target, err := personAt(book, c.index)
	if err != nil {
		return nil, err
	}
	if slices.ContainsFunc(target.Appointments, c.appointment.SameSlot) {
		return nil, &Error{Message: MessageDuplicateAppointment}
	}

	edited := target.Clone()
	edited.AddAppointment(c.appointment)
	if _, err := book.SetPerson(ctx, target.ID, edited); err != nil {
		return nil, fmt.Errorf("failed to add appointment: %w", err)
	}

	return &CommandResult{Feedback: fmt.Sprintf(MessageAddAppointmentSuccess, target.Name, c.appointment)}, nil
}

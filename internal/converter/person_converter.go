package converter

import (
	"slices"

	"github.com/pradyuprasad/tp/internal/delivery/dto"
	"github.com/pradyuprasad/tp/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appt *entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		StartDate: appt.Start.Format(entity.DateLayout),
		StartTime: appt.Start.Format(entity.TimeLayout),
		EndDate:   appt.End.Format(entity.DateLayout),
		EndTime:   appt.End.Format(entity.TimeLayout),
	}
}

// PersonToResponse converts a Person entity shown at a one-based index to PersonResponse DTO
func PersonToResponse(index int, person *entity.Person) *dto.PersonResponse {
	if person == nil {
		return nil
	}

	appointments := make([]dto.AppointmentResponse, len(person.Appointments))
	for i := range person.Appointments {
		appointments[i] = AppointmentToResponse(&person.Appointments[i])
	}

	tags := slices.Clone(person.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &dto.PersonResponse{
		Index:        index,
		ID:           person.ID,
		Name:         person.Name,
		Phone:        person.Phone,
		Email:        person.Email,
		Address:      person.Address,
		Role:         person.Role.String(),
		Tags:         tags,
		Appointments: appointments,
	}
}

// PersonsToResponse numbers persons from 1 in display order
func PersonsToResponse(persons []entity.Person) []dto.PersonResponse {
	out := make([]dto.PersonResponse, len(persons))
	for i := range persons {
		out[i] = *PersonToResponse(i+1, &persons[i])
	}
	return out
}

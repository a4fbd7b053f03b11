package entity

import (
	"time"

	"github.com/google/uuid"
)

// Date and time layouts accepted on the command line
const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04"
)

// Appointment is a single booked slot for a person
type Appointment struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PersonID uuid.UUID `gorm:"type:uuid;not null;index" json:"person_id"`
	Start    time.Time `gorm:"column:start_at;not null;index" json:"start" validate:"required"`
	End      time.Time `gorm:"column:end_at;not null" json:"end" validate:"required"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// NewAppointment builds an appointment from separately parsed date and time parts
func NewAppointment(startDate, startTime, endDate, endTime time.Time) Appointment {
	return Appointment{
		Start: CombineDateTime(startDate, startTime),
		End:   CombineDateTime(endDate, endTime),
	}
}

// CombineDateTime takes the calendar day from date and the clock from clock
func CombineDateTime(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}

// Within reports whether the appointment starts at or after from and ends at or before to
func (a Appointment) Within(from, to time.Time) bool {
	return !a.Start.Before(from) && !a.End.After(to)
}

// SameSlot reports whether two appointments cover exactly the same period
func (a Appointment) SameSlot(other Appointment) bool {
	return a.Start.Equal(other.Start) && a.End.Equal(other.End)
}

func (a Appointment) String() string {
	return a.Start.Format(DateLayout+" "+TimeLayout) + " - " + a.End.Format(DateLayout+" "+TimeLayout)
}

package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Person represents a patient or caregiver record
type Person struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name" validate:"required"`
	Phone     string    `gorm:"type:varchar(30);not null" json:"phone" validate:"required,number,min=3"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email" validate:"required,email"`
	Address   string    `gorm:"type:text;not null" json:"address" validate:"required"`
	Role      Role      `gorm:"type:varchar(20);not null;index" json:"role" validate:"required,oneof=PATIENT CAREGIVER"`
	Tags      []string  `gorm:"serializer:json" json:"tags,omitempty" validate:"dive,required,alphanum"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"appointments,omitempty" validate:"dive"`
}

func (Person) TableName() string {
	return "persons"
}

// IsSamePerson reports whether other refers to the same person.
// Names are the identity of a record; other fields may differ.
func (p *Person) IsSamePerson(other *Person) bool {
	if other == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(p.Name), strings.TrimSpace(other.Name))
}

// HasTag checks if the person carries tag (case-insensitive)
func (p *Person) HasTag(tag string) bool {
	return slices.ContainsFunc(p.Tags, func(t string) bool {
		return strings.EqualFold(t, tag)
	})
}

// Clone returns a deep copy so callers cannot mutate stored state
func (p Person) Clone() Person {
	clone := p
	clone.Tags = slices.Clone(p.Tags)
	clone.Appointments = slices.Clone(p.Appointments)
	return clone
}

// AddAppointment appends a copy of appt bound to this person
func (p *Person) AddAppointment(appt Appointment) {
	appt.PersonID = p.ID
	p.Appointments = append(p.Appointments, appt)
}

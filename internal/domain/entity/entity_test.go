package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{input: "PATIENT", want: RolePatient},
		{input: "CAREGIVER", want: RoleCaregiver},
		{input: "patient", wantErr: true},
		{input: "Caregiver", wantErr: true},
		{input: "DOCTOR", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRole)
				assert.Equal(t, RoleConstraints, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestPersonIsSamePerson(t *testing.T) {
	alice := &Person{Name: "Alice Tan", Phone: "91234567"}
	other := &Person{Name: "alice tan ", Phone: "80000000"}
	bob := &Person{Name: "Bob"}

	assert.True(t, alice.IsSamePerson(other))
	assert.False(t, alice.IsSamePerson(bob))
	assert.False(t, alice.IsSamePerson(nil))
}

func TestPersonCloneIsIndependent(t *testing.T) {
	p := Person{Name: "Alice", Tags: []string{"diabetic"}}
	p.AddAppointment(Appointment{Start: time.Now(), End: time.Now()})

	clone := p.Clone()
	clone.Tags[0] = "changed"
	clone.Appointments[0].ID = 42

	assert.Equal(t, "diabetic", p.Tags[0])
	assert.Zero(t, p.Appointments[0].ID)
	assert.True(t, p.HasTag("DIABETIC"))
}

func TestAppointmentWithin(t *testing.T) {
	day := time.Date(2024, 10, 30, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return time.Date(0, 1, 1, h, m, 0, 0, time.UTC) }

	appt := NewAppointment(day, at(14, 0), day, at(15, 0))
	assert.Equal(t, time.Date(2024, 10, 30, 14, 0, 0, 0, time.UTC), appt.Start)

	assert.True(t, appt.Within(CombineDateTime(day, at(14, 0)), CombineDateTime(day, at(15, 0))))
	assert.True(t, appt.Within(CombineDateTime(day, at(9, 0)), CombineDateTime(day, at(18, 0))))
	assert.False(t, appt.Within(CombineDateTime(day, at(14, 30)), CombineDateTime(day, at(18, 0))))
	assert.False(t, appt.Within(CombineDateTime(day, at(9, 0)), CombineDateTime(day, at(14, 59))))
	assert.Equal(t, "30/10/2024 14:00 - 30/10/2024 15:00", appt.String())
}

// Package criteria holds the validated search constraints produced by the
// find parsers and the predicate that applies them to person records.
package criteria

import (
	"slices"
	"strings"
	"time"

	"github.com/pradyuprasad/tp/internal/domain/entity"
)

// SearchCriteria is a single validated constraint on a person record
type SearchCriteria interface {
	Test(p *entity.Person) bool
	Equal(other SearchCriteria) bool
}

// AppointmentSearchCriteria matches persons with an appointment inside the window.
// No ordering between start and end is enforced here.
type AppointmentSearchCriteria struct {
	StartDate time.Time
	StartTime time.Time
	EndDate   time.Time
	EndTime   time.Time
}

func NewAppointmentSearchCriteria(startDate, startTime, endDate, endTime time.Time) AppointmentSearchCriteria {
	return AppointmentSearchCriteria{
		StartDate: startDate,
		StartTime: startTime,
		EndDate:   endDate,
		EndTime:   endTime,
	}
}

// Window returns the combined start and end instants
func (c AppointmentSearchCriteria) Window() (time.Time, time.Time) {
	return entity.CombineDateTime(c.StartDate, c.StartTime), entity.CombineDateTime(c.EndDate, c.EndTime)
}

func (c AppointmentSearchCriteria) Test(p *entity.Person) bool {
	from, to := c.Window()
	return slices.ContainsFunc(p.Appointments, func(a entity.Appointment) bool {
		return a.Within(from, to)
	})
}

func (c AppointmentSearchCriteria) Equal(other SearchCriteria) bool {
	o, ok := other.(AppointmentSearchCriteria)
	if !ok {
		return false
	}
	return c.StartDate.Equal(o.StartDate) && c.StartTime.Equal(o.StartTime) &&
		c.EndDate.Equal(o.EndDate) && c.EndTime.Equal(o.EndTime)
}

// NameSearchCriteria matches when any keyword equals a whole word of the name
type NameSearchCriteria struct {
	Keywords []string
}

func (c NameSearchCriteria) Test(p *entity.Person) bool {
	words := strings.Fields(p.Name)
	return slices.ContainsFunc(c.Keywords, func(k string) bool {
		return slices.ContainsFunc(words, func(w string) bool {
			return strings.EqualFold(w, k)
		})
	})
}

func (c NameSearchCriteria) Equal(other SearchCriteria) bool {
	o, ok := other.(NameSearchCriteria)
	return ok && slices.Equal(c.Keywords, o.Keywords)
}

// RoleSearchCriteria matches persons holding the given role
type RoleSearchCriteria struct {
	Role entity.Role
}

func (c RoleSearchCriteria) Test(p *entity.Person) bool {
	return p.Role == c.Role
}

func (c RoleSearchCriteria) Equal(other SearchCriteria) bool {
	o, ok := other.(RoleSearchCriteria)
	return ok && c.Role == o.Role
}

// TagSearchCriteria matches persons carrying every listed tag
type TagSearchCriteria struct {
	Tags []string
}

func (c TagSearchCriteria) Test(p *entity.Person) bool {
	for _, t := range c.Tags {
		if !p.HasTag(t) {
			return false
		}
	}
	return true
}

func (c TagSearchCriteria) Equal(other SearchCriteria) bool {
	o, ok := other.(TagSearchCriteria)
	return ok && slices.Equal(c.Tags, o.Tags)
}

package criteria

import (
	"slices"

	"github.com/pradyuprasad/tp/internal/domain/entity"
)

// Predicate filters person records
type Predicate interface {
	Test(p *entity.Person) bool
}

// ShowAll matches every record
type ShowAll struct{}

func (ShowAll) Test(*entity.Person) bool { return true }

// ContainsKeywordsPredicate matches a person satisfying every wrapped criteria.
// An empty predicate matches nothing.
type ContainsKeywordsPredicate struct {
	criteria []SearchCriteria
}

func NewContainsKeywordsPredicate(c ...SearchCriteria) ContainsKeywordsPredicate {
	return ContainsKeywordsPredicate{criteria: slices.Clone(c)}
}

func (p ContainsKeywordsPredicate) Criteria() []SearchCriteria {
	return slices.Clone(p.criteria)
}

func (p ContainsKeywordsPredicate) Test(person *entity.Person) bool {
	if len(p.criteria) == 0 {
		return false
	}
	for _, c := range p.criteria {
		if !c.Test(person) {
			return false
		}
	}
	return true
}

func (p ContainsKeywordsPredicate) Equal(other ContainsKeywordsPredicate) bool {
	return slices.EqualFunc(p.criteria, other.criteria, func(a, b SearchCriteria) bool {
		return a.Equal(b)
	})
}

package usecase

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/pradyuprasad/tp/internal/domain/criteria"
	"github.com/pradyuprasad/tp/internal/domain/entity"
	"github.com/pradyuprasad/tp/internal/domain/repository"
	"github.com/pradyuprasad/tp/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPersonNotFound  = errors.New("person not found")
	ErrDuplicatePerson = errors.New("person already exists")
)

// AddressBookUsecase is the record store the commands run against. It keeps
// every person in memory and, when a database is configured, writes each
// mutation through the repository before applying it.
type AddressBookUsecase interface {
	Load(ctx context.Context) error
	HasPerson(person *entity.Person) bool
	AddPerson(ctx context.Context, person entity.Person) (entity.Person, error)
	SetPerson(ctx context.Context, id uuid.UUID, edited entity.Person) (entity.Person, error)
	DeletePerson(ctx context.Context, id uuid.UUID) error
	ClearPersons(ctx context.Context) error
	Persons() []entity.Person
	FilteredPersons() []entity.Person
	UpdateFilteredPersons(predicate criteria.Predicate)
}

type addressBookUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	personRepo repository.PersonRepository
	validator  *validator.CustomValidator

	mu      sync.RWMutex
	persons []entity.Person
	filter  criteria.Predicate
}

// NewAddressBookUsecase builds the store. db may be nil to keep records in memory only.
func NewAddressBookUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	personRepo repository.PersonRepository,
	validator *validator.CustomValidator,
) AddressBookUsecase {
	return &addressBookUsecase{
		db:         db,
		log:        log,
		personRepo: personRepo,
		validator:  validator,
		filter:     criteria.ShowAll{},
	}
}

// Load replaces the in-memory records with what is stored. Records that fail
// validation or duplicate an earlier name are skipped.
func (u *addressBookUsecase) Load(ctx context.Context) error {
	if u.db == nil {
		return nil
	}

	stored, err := u.personRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to load persons: %+v", err)
		return err
	}

	loaded := make([]entity.Person, 0, len(stored))
	for _, p := range stored {
		if err := u.validator.Validate(&p); err != nil {
			u.log.WithField("person_id", p.ID).Warnf("Skipping invalid stored person: %v", u.validator.FormatValidationErrors(err))
			continue
		}
		if slices.ContainsFunc(loaded, func(other entity.Person) bool { return other.IsSamePerson(&p) }) {
			u.log.WithField("person_id", p.ID).Warnf("Skipping duplicate stored person %q", p.Name)
			continue
		}
		loaded = append(loaded, p)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.persons = loaded
	u.filter = criteria.ShowAll{}

	u.log.Infof("Loaded %d persons", len(loaded))
	return nil
}

func (u *addressBookUsecase) HasPerson(person *entity.Person) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.indexOfSamePerson(person) >= 0
}

func (u *addressBookUsecase) AddPerson(ctx context.Context, person entity.Person) (entity.Person, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.indexOfSamePerson(&person) >= 0 {
		return entity.Person{}, ErrDuplicatePerson
	}

	person = person.Clone()
	if person.ID == uuid.Nil {
		person.ID = uuid.New()
	}
	for i := range person.Appointments {
		person.Appointments[i].PersonID = person.ID
	}

	if u.db != nil {
		if err := u.personRepo.Create(ctx, u.db, &person); err != nil {
			u.log.Warnf("Failed to create person %q: %+v", person.Name, err)
			return entity.Person{}, err
		}
	}

	u.persons = append(u.persons, person)
	u.log.Infof("Person added: id=%s", person.ID)
	return person.Clone(), nil
}

func (u *addressBookUsecase) SetPerson(ctx context.Context, id uuid.UUID, edited entity.Person) (entity.Person, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOfID(id)
	if idx < 0 {
		return entity.Person{}, ErrPersonNotFound
	}
	target := u.persons[idx]

	if !target.IsSamePerson(&edited) && u.indexOfSamePerson(&edited) >= 0 {
		return entity.Person{}, ErrDuplicatePerson
	}

	edited = edited.Clone()
	edited.ID = target.ID
	edited.CreatedAt = target.CreatedAt

	if u.db != nil {
		if err := u.personRepo.Update(ctx, u.db, &edited); err != nil {
			u.log.Warnf("Failed to update person %s: %+v", id, err)
			return entity.Person{}, err
		}

		// keep the in-memory copy identical to the stored row, appointment ids included
		stored, err := u.personRepo.FindByID(ctx, u.db, id)
		if err != nil {
			u.log.Warnf("Failed to reload person %s: %+v", id, err)
			return entity.Person{}, err
		}
		if stored == nil {
			return entity.Person{}, ErrPersonNotFound
		}
		edited = *stored
	}

	u.persons[idx] = edited
	u.log.Infof("Person updated: id=%s", id)
	return edited.Clone(), nil
}

func (u *addressBookUsecase) DeletePerson(ctx context.Context, id uuid.UUID) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOfID(id)
	if idx < 0 {
		return ErrPersonNotFound
	}

	if u.db != nil {
		if err := u.personRepo.Delete(ctx, u.db, id); err != nil {
			u.log.Warnf("Failed to delete person %s: %+v", id, err)
			return err
		}
	}

	u.persons = slices.Delete(u.persons, idx, idx+1)
	u.log.Infof("Person deleted: id=%s", id)
	return nil
}

func (u *addressBookUsecase) ClearPersons(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.db != nil {
		if err := u.personRepo.DeleteAll(ctx, u.db); err != nil {
			u.log.Warnf("Failed to clear persons: %+v", err)
			return err
		}
	}

	u.persons = nil
	u.filter = criteria.ShowAll{}
	u.log.Info("Address book cleared")
	return nil
}

// Persons returns a copy of every record in insertion order
func (u *addressBookUsecase) Persons() []entity.Person {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]entity.Person, len(u.persons))
	for i, p := range u.persons {
		out[i] = p.Clone()
	}
	return out
}

// FilteredPersons returns copies of the records matching the current filter
func (u *addressBookUsecase) FilteredPersons() []entity.Person {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var out []entity.Person
	for i := range u.persons {
		if u.filter.Test(&u.persons[i]) {
			out = append(out, u.persons[i].Clone())
		}
	}
	return out
}

func (u *addressBookUsecase) UpdateFilteredPersons(predicate criteria.Predicate) {
	if predicate == nil {
		predicate = criteria.ShowAll{}
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.filter = predicate
}

func (u *addressBookUsecase) indexOfSamePerson(person *entity.Person) int {
	return slices.IndexFunc(u.persons, func(p entity.Person) bool {
		return p.IsSamePerson(person)
	})
}

func (u *addressBookUsecase) indexOfID(id uuid.UUID) int {
	return slices.IndexFunc(u.persons, func(p entity.Person) bool {
		return p.ID == id
	})
}

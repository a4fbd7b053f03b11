package repository

import (
	"context"
	"errors"

	"github.com/pradyuprasad/tp/internal/domain/entity"
	domainRepo "github.com/pradyuprasad/tp/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type personRepository struct{}

func NewPersonRepository() domainRepo.PersonRepository {
	return &personRepository{}
}

func (r *personRepository) Create(ctx context.Context, db *gorm.DB, person *entity.Person) error {
	return db.WithContext(ctx).Create(person).Error
}

func (r *personRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Person, error) {
	var person entity.Person
	err := db.WithContext(ctx).Preload("Appointments", orderAppointments).Where("id = ?", id).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Person, error) {
	var persons []entity.Person
	err := db.WithContext(ctx).
		Preload("Appointments", orderAppointments).
		Order("created_at ASC, name ASC").
		Find(&persons).Error
	if err != nil {
		return nil, err
	}
	return persons, nil
}

// Update saves the person's own columns and replaces its appointments
func (r *personRepository) Update(ctx context.Context, db *gorm.DB, person *entity.Person) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", person.ID).Delete(&entity.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Appointments").Save(person).Error; err != nil {
			return err
		}
		if len(person.Appointments) == 0 {
			return nil
		}

		appointments := make([]entity.Appointment, len(person.Appointments))
		for i, a := range person.Appointments {
			a.ID = 0
			a.PersonID = person.ID
			appointments[i] = a
		}
		if err := tx.Create(&appointments).Error; err != nil {
			return err
		}
		person.Appointments = appointments
		return nil
	})
}

func (r *personRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&entity.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Person{}).Error
	})
}

func (r *personRepository) DeleteAll(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&entity.Person{}).Error
	})
}

func orderAppointments(db *gorm.DB) *gorm.DB {
	return db.Order("start_at ASC")
}

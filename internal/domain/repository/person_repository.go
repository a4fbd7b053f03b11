package repository

import (
	"context"

	"github.com/pradyuprasad/tp/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PersonRepository interface {
	Create(ctx context.Context, db *gorm.DB, person *entity.Person) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Person, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Person, error)
	Update(ctx context.Context, db *gorm.DB, person *entity.Person) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
	DeleteAll(ctx context.Context, db *gorm.DB) error
}

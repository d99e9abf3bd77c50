package attempt

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(a *Attempt) error
	ListByUser(userID uuid.UUID) ([]Attempt, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(a *Attempt) error {
	return r.db.Create(a).Error
}

func (r *repository) ListByUser(userID uuid.UUID) ([]Attempt, error) {
	var attempts []Attempt
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

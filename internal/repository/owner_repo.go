package repository

import (
	"context"

	"github.com/fady121/alfady/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnerRepository interface {
	FindByPhone(ctx context.Context, phone string) (*model.Owner, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Owner, error)
	Create(ctx context.Context, o *model.Owner) error
}

type ownerRepo struct{ db *gorm.DB }

func NewOwnerRepository(db *gorm.DB) OwnerRepository { return &ownerRepo{db: db} }

func (r *ownerRepo) FindByPhone(ctx context.Context, phone string) (*model.Owner, error) {
	var o model.Owner
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&o).Error
	return &o, err
}

func (r *ownerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Owner, error) {
	var o model.Owner
	err := r.db.WithContext(ctx).First(&o, id).Error
	return &o, err
}

func (r *ownerRepo) Create(ctx context.Context, o *model.Owner) error {
	return r.db.WithContext(ctx).Create(o).Error
}

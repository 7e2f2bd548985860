package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/totegamma/concrnt-favorite/internal/domain"
	"github.com/totegamma/concrnt-favorite/internal/infrastructure/database/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	model := models.User{
		ID:   user.ID,
		Name: user.Name,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.User{}, err
	}

	return model.ToDomain(), nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (domain.User, error) {
	var model models.User
	err := r.db.WithContext(ctx).Take(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.NotFoundError{Resource: "user", ID: id}
	}
	if err != nil {
		return domain.User{}, err
	}

	return model.ToDomain(), nil
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/totegamma/concrnt-favorite/internal/domain"
	"github.com/totegamma/concrnt-favorite/internal/infrastructure/database/models"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post domain.Post) (domain.Post, error) {
	model := models.Post{
		ID:      post.ID,
		Content: post.Content,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Post{}, err
	}

	return model.ToDomain(), nil
}

func (r *PostRepository) Get(ctx context.Context, id string) (domain.Post, error) {
	var model models.Post
	err := r.db.WithContext(ctx).Take(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Post{}, domain.NotFoundError{Resource: "post", ID: id}
	}
	if err != nil {
		return domain.Post{}, err
	}

	return model.ToDomain(), nil
}

// Delete removes the post; its favorites go with it through the model hook.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "post", ID: id}
	}
	return nil
}

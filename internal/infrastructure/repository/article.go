package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/totegamma/concrnt-favorite/internal/domain"
	"github.com/totegamma/concrnt-favorite/internal/infrastructure/database/models"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(ctx context.Context, article domain.Article) (domain.Article, error) {
	model := models.Article{
		ID:    article.ID,
		Title: article.Title,
		Body:  article.Body,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Article{}, err
	}

	return model.ToDomain(), nil
}

func (r *ArticleRepository) Get(ctx context.Context, id string) (domain.Article, error) {
	var model models.Article
	err := r.db.WithContext(ctx).Take(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Article{}, domain.NotFoundError{Resource: "article", ID: id}
	}
	if err != nil {
		return domain.Article{}, err
	}

	return model.ToDomain(), nil
}

// Delete removes the article; its favorites go with it through the model hook.
func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Article{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "article", ID: id}
	}
	return nil
}

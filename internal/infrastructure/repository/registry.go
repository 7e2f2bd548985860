package repository

import (
	"gorm.io/gorm"

	"github.com/totegamma/concrnt-favorite"
	"github.com/totegamma/concrnt-favorite/internal/domain"
	"github.com/totegamma/concrnt-favorite/internal/infrastructure/database/models"
	favstore "github.com/totegamma/concrnt-favorite/repository"
)

// NewRegistry registers loaders for every entity type the service knows.
// Hydrated values are domain types.
func NewRegistry(db *gorm.DB) *favorite.Registry {
	registry := favorite.NewRegistry()

	registry.Register(domain.TypeUser, favstore.Loader(db, "id", func(m models.User) (string, any) {
		return m.ID, m.ToDomain()
	}))
	registry.Register(domain.TypeArticle, favstore.Loader(db, "id", func(m models.Article) (string, any) {
		return m.ID, m.ToDomain()
	}))
	registry.Register(domain.TypePost, favstore.Loader(db, "id", func(m models.Post) (string, any) {
		return m.ID, m.ToDomain()
	}))

	return registry
}

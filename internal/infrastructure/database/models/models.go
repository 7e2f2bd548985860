package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/totegamma/concrnt-favorite/internal/domain"
	favstore "github.com/totegamma/concrnt-favorite/repository"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u User) ToDomain() domain.User {
	return domain.User{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt}
}

type Article struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Body      string    `json:"body" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AfterDelete drops the article's favorites inside the delete transaction.
func (a *Article) AfterDelete(tx *gorm.DB) error {
	return favstore.DeleteFavoritesOf(tx, a.ToDomain().FavoriteRef())
}

func (a Article) ToDomain() domain.Article {
	return domain.Article{ID: a.ID, Title: a.Title, Body: a.Body, CreatedAt: a.CreatedAt}
}

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *Post) AfterDelete(tx *gorm.DB) error {
	return favstore.DeleteFavoritesOf(tx, p.ToDomain().FavoriteRef())
}

func (p Post) ToDomain() domain.Post {
	return domain.Post{ID: p.ID, Content: p.Content, CreatedAt: p.CreatedAt}
}

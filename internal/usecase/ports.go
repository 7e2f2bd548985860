package usecase

import (
	"context"

	"github.com/totegamma/concrnt-favorite/internal/domain"
)

// UserRepository defines persistence for users.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Get(ctx context.Context, id string) (domain.User, error)
}

// ArticleRepository defines persistence for articles.
type ArticleRepository interface {
	Create(ctx context.Context, article domain.Article) (domain.Article, error)
	Get(ctx context.Context, id string) (domain.Article, error)
	Delete(ctx context.Context, id string) error
}

// PostRepository defines persistence for posts.
type PostRepository interface {
	Create(ctx context.Context, post domain.Post) (domain.Post, error)
	Get(ctx context.Context, id string) (domain.Post, error)
	Delete(ctx context.Context, id string) error
}

// EventPublisher fans favorite events out to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.FavoriteEvent) error
}

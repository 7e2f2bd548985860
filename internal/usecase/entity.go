package usecase

import (
	"context"
	"strings"

	"github.com/totegamma/concrnt-favorite/internal/domain"
)

type EntityUsecase struct {
	users    UserRepository
	articles ArticleRepository
	posts    PostRepository
}

func NewEntityUsecase(users UserRepository, articles ArticleRepository, posts PostRepository) *EntityUsecase {
	return &EntityUsecase{users: users, articles: articles, posts: posts}
}

func (uc *EntityUsecase) CreateUser(ctx context.Context, name string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, domain.InvalidInputError{Field: "name", Reason: "required"}
	}
	return uc.users.Create(ctx, domain.User{Name: name})
}

func (uc *EntityUsecase) GetUser(ctx context.Context, id string) (domain.User, error) {
	return uc.users.Get(ctx, id)
}

func (uc *EntityUsecase) CreateArticle(ctx context.Context, title, body string) (domain.Article, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Article{}, domain.InvalidInputError{Field: "title", Reason: "required"}
	}
	return uc.articles.Create(ctx, domain.Article{Title: title, Body: body})
}

func (uc *EntityUsecase) GetArticle(ctx context.Context, id string) (domain.Article, error) {
	return uc.articles.Get(ctx, id)
}

func (uc *EntityUsecase) DeleteArticle(ctx context.Context, id string) error {
	return uc.articles.Delete(ctx, id)
}

func (uc *EntityUsecase) CreatePost(ctx context.Context, content string) (domain.Post, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Post{}, domain.InvalidInputError{Field: "content", Reason: "required"}
	}
	return uc.posts.Create(ctx, domain.Post{Content: content})
}

func (uc *EntityUsecase) GetPost(ctx context.Context, id string) (domain.Post, error) {
	return uc.posts.Get(ctx, id)
}

func (uc *EntityUsecase) DeletePost(ctx context.Context, id string) error {
	return uc.posts.Delete(ctx, id)
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/totegamma/concrnt-favorite/internal/domain"
)

type mockUserRepo struct {
	created domain.User
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	u.ID = "generated"
	m.created = u
	return u, nil
}
func (m *mockUserRepo) Get(ctx context.Context, id string) (domain.User, error) {
	return domain.User{}, domain.NotFoundError{Resource: "user", ID: id}
}

type mockArticleRepo struct {
	deleted string
}

func (m *mockArticleRepo) Create(ctx context.Context, a domain.Article) (domain.Article, error) {
	return a, nil
}
func (m *mockArticleRepo) Get(ctx context.Context, id string) (domain.Article, error) {
	return domain.Article{ID: id}, nil
}
func (m *mockArticleRepo) Delete(ctx context.Context, id string) error {
	m.deleted = id
	return nil
}

type mockPostRepo struct{}

func (m *mockPostRepo) Create(ctx context.Context, p domain.Post) (domain.Post, error) {
	return p, nil
}
func (m *mockPostRepo) Get(ctx context.Context, id string) (domain.Post, error) {
	return domain.Post{ID: id}, nil
}
func (m *mockPostRepo) Delete(ctx context.Context, id string) error { return nil }

func TestEntityUsecaseCreateUser(t *testing.T) {
	users := &mockUserRepo{}
	uc := NewEntityUsecase(users, &mockArticleRepo{}, &mockPostRepo{})

	u, err := uc.CreateUser(context.Background(), "  Alice ")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if u.ID == "" || users.created.Name != "Alice" {
		t.Fatalf("expected trimmed name stored, got %+v", users.created)
	}
}

func TestEntityUsecaseValidation(t *testing.T) {
	uc := NewEntityUsecase(&mockUserRepo{}, &mockArticleRepo{}, &mockPostRepo{})
	ctx := context.Background()

	if _, err := uc.CreateUser(ctx, " "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input got %v", err)
	}
	if _, err := uc.CreateArticle(ctx, "", "body"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input got %v", err)
	}
	if _, err := uc.CreatePost(ctx, "\n"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input got %v", err)
	}
}

func TestEntityUsecaseDeleteArticle(t *testing.T) {
	articles := &mockArticleRepo{}
	uc := NewEntityUsecase(&mockUserRepo{}, articles, &mockPostRepo{})

	if err := uc.DeleteArticle(context.Background(), "a1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if articles.deleted != "a1" {
		t.Fatalf("expected delete a1 got %s", articles.deleted)
	}
}

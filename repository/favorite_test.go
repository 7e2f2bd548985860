package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/totegamma/concrnt-favorite"
)

type testUser struct {
	ID   string `gorm:"primaryKey;type:text"`
	Name string
}

func (u testUser) FavoriteRef() favorite.Ref { return favorite.Ref{Type: "user", ID: u.ID} }

type testArticle struct {
	ID    string `gorm:"primaryKey;type:text"`
	Title string
}

func (a testArticle) FavoriteRef() favorite.Ref { return favorite.Ref{Type: "article", ID: a.ID} }

func (a *testArticle) AfterDelete(tx *gorm.DB) error {
	return DeleteFavoritesOf(tx, a.FavoriteRef())
}

type testPost struct {
	ID    string `gorm:"primaryKey;type:text"`
	Title string
}

func (p testPost) FavoriteRef() favorite.Ref { return favorite.Ref{Type: "post", ID: p.ID} }

func (p *testPost) AfterDelete(tx *gorm.DB) error {
	return DeleteFavoritesOf(tx, p.FavoriteRef())
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	require.NoError(t, db.AutoMigrate(&testUser{}, &testArticle{}, &testPost{}))
	return db
}

func setupManager(t *testing.T, db *gorm.DB) *favorite.Manager {
	t.Helper()

	registry := favorite.NewRegistry()
	registry.Register("user", Loader(db, "id", func(u testUser) (string, any) { return u.ID, u }))
	registry.Register("article", Loader(db, "id", func(a testArticle) (string, any) { return a.ID, a }))
	registry.Register("post", Loader(db, "id", func(p testPost) (string, any) { return p.ID, p }))

	return favorite.NewManager(NewFavoriteRepository(db), registry, "user")
}

func countRows(t *testing.T, db *gorm.DB, actorID string, ref favorite.Ref) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&Favorite{}).
		Where("user_id = ? AND favoriteable_type = ? AND favoriteable_id = ?", actorID, ref.Type, ref.ID).
		Count(&n).Error)
	return n
}

func TestInsertAndExists(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewFavoriteRepository(db)

	rec, err := repo.Insert(ctx, "u1", "article", "a1")
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)
	assert.Equal(t, "u1", rec.ActorID)
	assert.Equal(t, "article", rec.TargetType)
	assert.Equal(t, "a1", rec.TargetID)
	assert.False(t, rec.CreatedAt.IsZero())

	ok, err := repo.ExistsWhere(ctx, "u1", "article", "a1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsWhere(ctx, "u1", "post", "a1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteWhere(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewFavoriteRepository(db)

	_, _ = repo.Insert(ctx, "u1", "article", "a1")
	_, _ = repo.Insert(ctx, "u2", "article", "a1")
	_, _ = repo.Insert(ctx, "u1", "post", "p1")

	n, err := repo.DeleteWhere(ctx, favorite.Filter{ActorID: "u1", TargetType: "article", TargetID: "a1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.DeleteWhere(ctx, favorite.Filter{ActorID: "nobody", TargetType: "article", TargetID: "a1"})
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.DeleteWhere(ctx, favorite.Filter{})
	assert.ErrorIs(t, err, favorite.ErrEmptyFilter)

	records, err := repo.FindWhere(ctx, favorite.Filter{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFindAndCount(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewFavoriteRepository(db)

	_, _ = repo.Insert(ctx, "u1", "article", "a1")
	_, _ = repo.Insert(ctx, "u1", "post", "p1")
	_, _ = repo.Insert(ctx, "u1", "post", "p2")
	_, _ = repo.Insert(ctx, "u2", "post", "p1")

	records, err := repo.FindWhere(ctx, favorite.Filter{ActorID: "u1", TargetType: "post"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "p1", records[0].TargetID)
	assert.Equal(t, "p2", records[1].TargetID)

	count, err := repo.CountWhere(ctx, "post", "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFavoritableOverGorm(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	m := setupManager(t, db)

	article := testArticle{ID: "a1", Title: "hello"}
	require.NoError(t, db.Create(&article).Error)
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, db.Create(&testUser{ID: id}).Error)
	}

	target := m.Target(article)
	require.NoError(t, target.AddFavorite(ctx, "1"))
	assert.Equal(t, int64(1), countRows(t, db, "1", article.FavoriteRef()))

	ok, err := target.IsFavorited(ctx, "1", nil)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, target.RemoveFavorite(ctx, "1"))
	assert.Zero(t, countRows(t, db, "1", article.FavoriteRef()))

	for _, id := range []string{"1", "2", "3"} {
		state, err := target.ToggleFavorite(ctx, id)
		require.NoError(t, err)
		assert.True(t, state)
	}

	count, err := target.FavoritesCount(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	by, err := target.FavoritedBy(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, by, 3)
	assert.Equal(t, "2", by["2"].(testUser).ID)

	for _, id := range []string{"1", "2", "3"} {
		state, err := target.ToggleFavorite(ctx, id)
		require.NoError(t, err)
		assert.False(t, state)
	}

	count, err = target.FavoritesCount(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFavoriterListsByType(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	m := setupManager(t, db)

	u := testUser{ID: "u"}
	a1 := testArticle{ID: "a1"}
	p1 := testPost{ID: "p1"}
	p2 := testPost{ID: "p2"}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&a1).Error)
	require.NoError(t, db.Create(&p1).Error)
	require.NoError(t, db.Create(&p2).Error)

	actor := m.Actor(u)
	require.NoError(t, actor.AddFavorite(ctx, a1))
	require.NoError(t, actor.AddFavorite(ctx, p1))
	require.NoError(t, actor.AddFavorite(ctx, p2))

	posts, err := actor.FavoriteTargetsOfType(ctx, "post", nil)
	require.NoError(t, err)
	typed := favorite.TargetsAs[testPost](posts)
	assert.Len(t, typed, 2)
	assert.Contains(t, typed, "p1")
	assert.Contains(t, typed, "p2")

	articles, err := actor.FavoriteTargetsOfType(ctx, "article", nil)
	require.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.Contains(t, articles, "a1")
}

func TestDeleteCascadesThroughHook(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	m := setupManager(t, db)

	a1 := testArticle{ID: "a1"}
	a2 := testArticle{ID: "a2"}
	require.NoError(t, db.Create(&a1).Error)
	require.NoError(t, db.Create(&a2).Error)

	require.NoError(t, m.ActorID("u1").AddFavorite(ctx, a1))
	require.NoError(t, m.ActorID("u2").AddFavorite(ctx, a1))
	require.NoError(t, m.ActorID("u1").AddFavorite(ctx, a2))

	require.NoError(t, db.Delete(&a1).Error)

	count, err := m.Target(a1).FavoritesCount(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, countRows(t, db, "u1", a1.FavoriteRef()))
	assert.Zero(t, countRows(t, db, "u2", a1.FavoriteRef()))

	left, err := m.ActorID("u1").FavoriteTargetsOfType(ctx, "article", nil)
	require.NoError(t, err)
	assert.Len(t, left, 1)
	assert.Contains(t, left, "a2")
}

func TestListingSkipsMissingTargets(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	m := setupManager(t, db)

	a1 := testArticle{ID: "a1"}
	require.NoError(t, db.Create(&a1).Error)
	require.NoError(t, m.ActorID("u1").AddFavorite(ctx, a1))
	// a favorite whose target row never existed
	require.NoError(t, m.ActorID("u1").AddFavorite(ctx, testArticle{ID: "ghost"}))

	left, err := m.ActorID("u1").FavoriteTargetsOfType(ctx, "article", nil)
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/concrnt-favorite"
)

// FavoriteRepository implements favorite.Store on top of gorm.
type FavoriteRepository struct {
	db *gorm.DB
}

var _ favorite.Store = (*FavoriteRepository)(nil)

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Insert(ctx context.Context, actorID, targetType, targetID string) (favorite.Record, error) {
	row := Favorite{
		UserID:           actorID,
		FavoriteableType: targetType,
		FavoriteableID:   targetID,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return favorite.Record{}, errors.Wrap(err, "FavoriteRepository.Insert")
	}

	return row.toRecord(), nil
}

func (r *FavoriteRepository) DeleteWhere(ctx context.Context, filter favorite.Filter) (int64, error) {
	if filter.IsEmpty() {
		return 0, favorite.ErrEmptyFilter
	}

	result := applyFilter(r.db.WithContext(ctx), filter).Delete(&Favorite{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "FavoriteRepository.DeleteWhere")
	}

	return result.RowsAffected, nil
}

func (r *FavoriteRepository) ExistsWhere(ctx context.Context, actorID, targetType, targetID string) (bool, error) {
	var row Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND favoriteable_type = ? AND favoriteable_id = ?", actorID, targetType, targetID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "FavoriteRepository.ExistsWhere")
	}

	return true, nil
}

func (r *FavoriteRepository) FindWhere(ctx context.Context, filter favorite.Filter) ([]favorite.Record, error) {
	var rows []Favorite
	err := applyFilter(r.db.WithContext(ctx), filter).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "FavoriteRepository.FindWhere")
	}

	records := make([]favorite.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

func (r *FavoriteRepository) CountWhere(ctx context.Context, targetType, targetID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Favorite{}).
		Where("favoriteable_type = ? AND favoriteable_id = ?", targetType, targetID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "FavoriteRepository.CountWhere")
	}

	return count, nil
}

// DeleteFavoritesOf removes every favorite of ref using tx. Call it from a
// model's AfterDelete hook so the cascade shares the delete's transaction.
func DeleteFavoritesOf(tx *gorm.DB, ref favorite.Ref) error {
	if ref.Type == "" || ref.ID == "" {
		return nil
	}

	err := tx.Session(&gorm.Session{NewDB: true}).
		Where("favoriteable_type = ? AND favoriteable_id = ?", ref.Type, ref.ID).
		Delete(&Favorite{}).Error
	if err != nil {
		return errors.Wrap(err, "DeleteFavoritesOf")
	}
	return nil
}

// Migrate creates or updates the favorites table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Favorite{})
}

func applyFilter(db *gorm.DB, filter favorite.Filter) *gorm.DB {
	db = db.Model(&Favorite{})
	if filter.ActorID != "" {
		db = db.Where("user_id = ?", filter.ActorID)
	}
	if filter.TargetType != "" {
		db = db.Where("favoriteable_type = ?", filter.TargetType)
	}
	if filter.TargetID != "" {
		db = db.Where("favoriteable_id = ?", filter.TargetID)
	}
	return db
}

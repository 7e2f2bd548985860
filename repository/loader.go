package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/concrnt-favorite"
)

// Loader builds a registry loader that fetches rows of T whose column is in
// the requested ids. convert maps each row to its id and the value handed
// back to callers.
func Loader[T any](db *gorm.DB, column string, convert func(T) (string, any)) favorite.Loader {
	return func(ctx context.Context, ids []string) (map[string]any, error) {
		var rows []T
		if err := db.WithContext(ctx).Where(column+" IN ?", ids).Find(&rows).Error; err != nil {
			return nil, errors.Wrap(err, "repository.Loader")
		}

		result := make(map[string]any, len(rows))
		for _, row := range rows {
			id, value := convert(row)
			result[id] = value
		}
		return result, nil
	}
}

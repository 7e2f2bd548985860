package repository

import (
	"time"

	"github.com/totegamma/concrnt-favorite"
)

// Favorite is the row of the polymorphic favorites table.
// No uniqueness constraint: duplicates are possible and removal deletes them all.
type Favorite struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           string    `json:"userID" gorm:"type:text;not null;index"`
	FavoriteableID   string    `json:"favoriteableID" gorm:"type:text;not null;index:idx_favorites_favoriteable,priority:2"`
	FavoriteableType string    `json:"favoriteableType" gorm:"type:text;not null;index:idx_favorites_favoriteable,priority:1"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func (f Favorite) toRecord() favorite.Record {
	return favorite.Record{
		ID:         f.ID,
		ActorID:    f.UserID,
		TargetType: f.FavoriteableType,
		TargetID:   f.FavoriteableID,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

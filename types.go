package favorite

import (
	"context"
	"time"
)

// Ref is a polymorphic reference to an entity: a type discriminator plus the
// entity's id within that type.
type Ref struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Entity is implemented by anything that can take part in a favorite, either
// as the actor or as the target.
type Entity interface {
	FavoriteRef() Ref
}

// Record is one actor-favorites-target association.
type Record struct {
	ID         uint      `json:"id"`
	ActorID    string    `json:"actorID"`
	TargetType string    `json:"targetType"`
	TargetID   string    `json:"targetID"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Target returns the reference of the favorited entity.
func (r Record) Target() Ref {
	return Ref{Type: r.TargetType, ID: r.TargetID}
}

// Filter selects records. Empty fields match anything.
type Filter struct {
	ActorID    string
	TargetType string
	TargetID   string
}

func (f Filter) IsEmpty() bool {
	return f.ActorID == "" && f.TargetType == "" && f.TargetID == ""
}

// Store persists favorite records.
type Store interface {
	Insert(ctx context.Context, actorID, targetType, targetID string) (Record, error)
	DeleteWhere(ctx context.Context, filter Filter) (int64, error)
	ExistsWhere(ctx context.Context, actorID, targetType, targetID string) (bool, error)
	FindWhere(ctx context.Context, filter Filter) ([]Record, error)
	CountWhere(ctx context.Context, targetType, targetID string) (int64, error)
}

// Favoritable is the capability of an entity that can be favorited.
type Favoritable interface {
	AddFavorite(ctx context.Context, actorID string) error
	RemoveFavorite(ctx context.Context, actorID string) error
	ToggleFavorite(ctx context.Context, actorID string) (bool, error)
	IsFavorited(ctx context.Context, actorID string, snap *Snapshot) (bool, error)
	FavoritedBy(ctx context.Context, snap *Snapshot) (map[string]any, error)
	FavoritesCount(ctx context.Context, snap *Snapshot) (int64, error)
}

// Favoriter is the capability of an entity that favorites others.
type Favoriter interface {
	FavoriteTargetsOfType(ctx context.Context, targetType string, snap *Snapshot) (map[string]any, error)
	AddFavorite(ctx context.Context, target Entity) error
	RemoveFavorite(ctx context.Context, target Entity) error
	ToggleFavorite(ctx context.Context, target Entity) (bool, error)
	IsFavorited(ctx context.Context, target Entity) (bool, error)
	HasFavorited(ctx context.Context, target Entity) (bool, error)
}

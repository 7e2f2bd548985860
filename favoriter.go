package favorite

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// Actor is the Favoriter capability of one entity. Apart from the reverse
// listing it only delegates to Target with its own id.
type Actor struct {
	id string
	m  *Manager
}

var _ Favoriter = (*Actor)(nil)

func (a *Actor) ID() string {
	return a.id
}

// FavoriteTargetsOfType returns the hydrated targets of targetType this actor
// favorites, keyed by target id. Targets the loader cannot find are omitted.
func (a *Actor) FavoriteTargetsOfType(ctx context.Context, targetType string, snap *Snapshot) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "Favorite.Actor.FavoriteTargetsOfType")
	defer span.End()
	span.SetAttributes(attribute.String("actor", a.id), attribute.String("type", targetType))

	if !a.m.registry.Has(targetType) {
		err := UnknownTypeError{Type: targetType}
		span.RecordError(err)
		return nil, err
	}
	if a.id == "" {
		return map[string]any{}, nil
	}

	filter := Filter{ActorID: a.id, TargetType: targetType}

	if snap == nil {
		records, err := a.m.store.FindWhere(ctx, filter)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		snap = &Snapshot{Records: records}
	} else {
		snap = snap.Where(filter)
	}

	targets, err := a.m.registry.Load(ctx, targetType, snap.TargetIDs())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return targets, nil
}

func (a *Actor) AddFavorite(ctx context.Context, target Entity) error {
	return a.m.Target(target).AddFavorite(ctx, a.id)
}

func (a *Actor) RemoveFavorite(ctx context.Context, target Entity) error {
	return a.m.Target(target).RemoveFavorite(ctx, a.id)
}

func (a *Actor) ToggleFavorite(ctx context.Context, target Entity) (bool, error) {
	return a.m.Target(target).ToggleFavorite(ctx, a.id)
}

func (a *Actor) IsFavorited(ctx context.Context, target Entity) (bool, error) {
	return a.m.Target(target).IsFavorited(ctx, a.id, nil)
}

// HasFavorited is an alias of IsFavorited.
func (a *Actor) HasFavorited(ctx context.Context, target Entity) (bool, error) {
	return a.IsFavorited(ctx, target)
}

// Snapshot pre-fetches every record of this actor.
func (a *Actor) Snapshot(ctx context.Context) (*Snapshot, error) {
	if a.id == "" {
		return &Snapshot{}, nil
	}
	records, err := a.m.store.FindWhere(ctx, Filter{ActorID: a.id})
	if err != nil {
		return nil, err
	}
	return &Snapshot{Records: records}, nil
}

package favorite

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// Target is the Favoritable capability of one entity.
type Target struct {
	ref Ref
	m   *Manager
}

var _ Favoritable = (*Target)(nil)

func (t *Target) Ref() Ref {
	return t.ref
}

func (t *Target) filter(actorID string) Filter {
	return Filter{ActorID: actorID, TargetType: t.ref.Type, TargetID: t.ref.ID}
}

func (t *Target) complete() bool {
	return t.ref.Type != "" && t.ref.ID != ""
}

// scope narrows snap to this target. An incomplete ref matches nothing.
func (t *Target) scope(snap *Snapshot) *Snapshot {
	if !t.complete() {
		return &Snapshot{}
	}
	return snap.Where(t.filter(""))
}

// AddFavorite inserts a record for actorID. It does not check for an existing
// record, so repeated calls create duplicate rows.
func (t *Target) AddFavorite(ctx context.Context, actorID string) error {
	ctx, span := tracer.Start(ctx, "Favorite.Target.AddFavorite")
	defer span.End()
	span.SetAttributes(attribute.String("target", t.ref.String()), attribute.String("actor", actorID))

	if actorID == "" {
		return ErrNoActor
	}
	if !t.complete() {
		return ErrNoTarget
	}

	_, err := t.m.store.Insert(ctx, actorID, t.ref.Type, t.ref.ID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// RemoveFavorite deletes every record of actorID on this target.
func (t *Target) RemoveFavorite(ctx context.Context, actorID string) error {
	ctx, span := tracer.Start(ctx, "Favorite.Target.RemoveFavorite")
	defer span.End()
	span.SetAttributes(attribute.String("target", t.ref.String()), attribute.String("actor", actorID))

	if actorID == "" {
		return ErrNoActor
	}
	if !t.complete() {
		return ErrNoTarget
	}

	_, err := t.m.store.DeleteWhere(ctx, t.filter(actorID))
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// ToggleFavorite removes the favorite if present, adds it otherwise, and
// reports the resulting state. The check and the write are separate store
// calls; concurrent toggles by the same actor can race.
func (t *Target) ToggleFavorite(ctx context.Context, actorID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Favorite.Target.ToggleFavorite")
	defer span.End()

	if actorID == "" {
		return false, ErrNoActor
	}
	if !t.complete() {
		return false, ErrNoTarget
	}

	favorited, err := t.IsFavorited(ctx, actorID, nil)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	if favorited {
		return false, t.RemoveFavorite(ctx, actorID)
	}
	return true, t.AddFavorite(ctx, actorID)
}

// IsFavorited reports whether actorID favorites this target. An empty actor
// id matches nothing.
func (t *Target) IsFavorited(ctx context.Context, actorID string, snap *Snapshot) (bool, error) {
	if actorID == "" {
		return false, nil
	}
	if snap != nil {
		return snap.Contains(actorID, t.ref.Type, t.ref.ID), nil
	}

	ctx, span := tracer.Start(ctx, "Favorite.Target.IsFavorited")
	defer span.End()

	exists, err := t.m.store.ExistsWhere(ctx, actorID, t.ref.Type, t.ref.ID)
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	return exists, nil
}

// FavoritedBy returns the hydrated actors who favorite this target, keyed by
// actor id.
func (t *Target) FavoritedBy(ctx context.Context, snap *Snapshot) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "Favorite.Target.FavoritedBy")
	defer span.End()

	if snap == nil {
		var err error
		snap, err = t.Snapshot(ctx)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
	} else {
		snap = t.scope(snap)
	}

	actors, err := t.m.registry.Load(ctx, t.m.actorType, snap.ActorIDs())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return actors, nil
}

// FavoritesCount returns the number of records on this target.
func (t *Target) FavoritesCount(ctx context.Context, snap *Snapshot) (int64, error) {
	if snap != nil {
		return int64(t.scope(snap).Len()), nil
	}

	ctx, span := tracer.Start(ctx, "Favorite.Target.FavoritesCount")
	defer span.End()

	count, err := t.m.store.CountWhere(ctx, t.ref.Type, t.ref.ID)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return count, nil
}

// Snapshot pre-fetches every record on this target.
func (t *Target) Snapshot(ctx context.Context) (*Snapshot, error) {
	if !t.complete() {
		return &Snapshot{}, nil
	}
	records, err := t.m.store.FindWhere(ctx, t.filter(""))
	if err != nil {
		return nil, err
	}
	return &Snapshot{Records: records}, nil
}

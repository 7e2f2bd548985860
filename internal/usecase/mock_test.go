package usecase

import (
	"context"

	"github.com/totegamma/concrnt-favorite"
	"github.com/totegamma/concrnt-favorite/internal/domain"
)

// mockFavoriteStore keeps records in a slice.
type mockFavoriteStore struct {
	nextID  uint
	records []favorite.Record
}

func (m *mockFavoriteStore) match(r favorite.Record, f favorite.Filter) bool {
	return (f.ActorID == "" || r.ActorID == f.ActorID) &&
		(f.TargetType == "" || r.TargetType == f.TargetType) &&
		(f.TargetID == "" || r.TargetID == f.TargetID)
}

func (m *mockFavoriteStore) Insert(ctx context.Context, actorID, targetType, targetID string) (favorite.Record, error) {
	m.nextID++
	r := favorite.Record{ID: m.nextID, ActorID: actorID, TargetType: targetType, TargetID: targetID}
	m.records = append(m.records, r)
	return r, nil
}

func (m *mockFavoriteStore) DeleteWhere(ctx context.Context, f favorite.Filter) (int64, error) {
	if f.IsEmpty() {
		return 0, favorite.ErrEmptyFilter
	}
	var kept []favorite.Record
	var n int64
	for _, r := range m.records {
		if m.match(r, f) {
			n++
			continue
		}
		kept = append(kept, r)
	}
	m.records = kept
	return n, nil
}

func (m *mockFavoriteStore) ExistsWhere(ctx context.Context, actorID, targetType, targetID string) (bool, error) {
	for _, r := range m.records {
		if m.match(r, favorite.Filter{ActorID: actorID, TargetType: targetType, TargetID: targetID}) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockFavoriteStore) FindWhere(ctx context.Context, f favorite.Filter) ([]favorite.Record, error) {
	var out []favorite.Record
	for _, r := range m.records {
		if m.match(r, f) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockFavoriteStore) CountWhere(ctx context.Context, targetType, targetID string) (int64, error) {
	recs, _ := m.FindWhere(ctx, favorite.Filter{TargetType: targetType, TargetID: targetID})
	return int64(len(recs)), nil
}

type mockPublisher struct {
	events []domain.FavoriteEvent
}

func (m *mockPublisher) Publish(ctx context.Context, event domain.FavoriteEvent) error {
	m.events = append(m.events, event)
	return nil
}

// newTestManager registers static loaders over the given entities.
func newTestManager(store favorite.Store, entities ...favorite.Entity) *favorite.Manager {
	byType := map[string]map[string]any{}
	for _, e := range entities {
		ref := e.FavoriteRef()
		if byType[ref.Type] == nil {
			byType[ref.Type] = map[string]any{}
		}
		byType[ref.Type][ref.ID] = e
	}

	registry := favorite.NewRegistry()
	for _, typ := range []string{domain.TypeUser, domain.TypeArticle, domain.TypePost} {
		typ := typ
		registry.Register(typ, func(ctx context.Context, ids []string) (map[string]any, error) {
			out := map[string]any{}
			for _, id := range ids {
				if e, ok := byType[typ][id]; ok {
					out[id] = e
				}
			}
			return out, nil
		})
	}
	return favorite.NewManager(store, registry, domain.TypeUser)
}

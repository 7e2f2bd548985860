package favorite

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("favorite")

// Manager binds entities to the favorite capabilities backed by one store.
type Manager struct {
	store     Store
	registry  *Registry
	actorType string
}

// NewManager creates a Manager. actorType is the registry discriminator used to
// hydrate favoriters.
func NewManager(store Store, registry *Registry, actorType string) *Manager {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Manager{
		store:     store,
		registry:  registry,
		actorType: actorType,
	}
}

func (m *Manager) Store() Store {
	return m.store
}

func (m *Manager) Registry() *Registry {
	return m.registry
}

func (m *Manager) ActorType() string {
	return m.actorType
}

// Target returns the Favoritable capability of e.
func (m *Manager) Target(e Entity) *Target {
	return m.TargetRef(e.FavoriteRef())
}

func (m *Manager) TargetRef(ref Ref) *Target {
	return &Target{ref: ref, m: m}
}

// Actor returns the Favoriter capability of e.
func (m *Manager) Actor(e Entity) *Actor {
	return m.ActorID(e.FavoriteRef().ID)
}

func (m *Manager) ActorID(id string) *Actor {
	return &Actor{id: id, m: m}
}

// Deleted removes every favorite record pointing at e. Hosts call it when a
// favoritable entity is deleted.
func (m *Manager) Deleted(ctx context.Context, e Entity) error {
	ref := e.FavoriteRef()
	ctx, span := tracer.Start(ctx, "Favorite.Manager.Deleted")
	defer span.End()
	span.SetAttributes(attribute.String("target", ref.String()))

	if ref.Type == "" || ref.ID == "" {
		return nil
	}

	_, err := m.store.DeleteWhere(ctx, Filter{TargetType: ref.Type, TargetID: ref.ID})
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

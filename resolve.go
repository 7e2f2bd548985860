package favorite

import "context"

type actorCtxKey struct{}

// WithActor returns a context carrying the current actor id.
func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actorID)
}

// ActorFromContext returns the actor id stored by WithActor.
func ActorFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actorCtxKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ActorResolver supplies the current actor when none is passed explicitly.
type ActorResolver interface {
	CurrentActor(ctx context.Context) (string, bool)
}

// ContextResolver resolves the actor stored by WithActor.
type ContextResolver struct{}

func (ContextResolver) CurrentActor(ctx context.Context) (string, bool) {
	return ActorFromContext(ctx)
}

// ResolveActor picks the explicit id when given, otherwise asks resolver.
func ResolveActor(ctx context.Context, explicit string, resolver ActorResolver) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if resolver == nil {
		return "", ErrNoActor
	}
	id, ok := resolver.CurrentActor(ctx)
	if !ok || id == "" {
		return "", ErrNoActor
	}
	return id, nil
}

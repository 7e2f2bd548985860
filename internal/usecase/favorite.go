package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/totegamma/concrnt-favorite"
	"github.com/totegamma/concrnt-favorite/internal/domain"
)

// FavoriteUsecase is the application boundary of the favorites subsystem. It
// resolves the default actor, checks targets exist and publishes events.
type FavoriteUsecase struct {
	manager  *favorite.Manager
	resolver favorite.ActorResolver
	events   EventPublisher
}

func NewFavoriteUsecase(manager *favorite.Manager, resolver favorite.ActorResolver, events EventPublisher) *FavoriteUsecase {
	return &FavoriteUsecase{manager: manager, resolver: resolver, events: events}
}

// lookupTarget fails with NotFoundError when the target does not exist.
func (uc *FavoriteUsecase) lookupTarget(ctx context.Context, ref favorite.Ref) (*favorite.Target, error) {
	found, err := uc.manager.Registry().Load(ctx, ref.Type, []string{ref.ID})
	if err != nil {
		return nil, err
	}
	if _, ok := found[ref.ID]; !ok {
		return nil, domain.NotFoundError{Resource: ref.Type, ID: ref.ID}
	}
	return uc.manager.TargetRef(ref), nil
}

func (uc *FavoriteUsecase) Add(ctx context.Context, ref favorite.Ref, actor string) (domain.FavoriteStatus, error) {
	actorID, err := favorite.ResolveActor(ctx, actor, uc.resolver)
	if err != nil {
		return domain.FavoriteStatus{}, err
	}
	target, err := uc.lookupTarget(ctx, ref)
	if err != nil {
		return domain.FavoriteStatus{}, err
	}

	if err := target.AddFavorite(ctx, actorID); err != nil {
		return domain.FavoriteStatus{}, errors.Wrap(err, "FavoriteUsecase.Add")
	}
	uc.publish(ctx, domain.EventFavorited, actorID, ref)

	return uc.status(ctx, target, actorID)
}

func (uc *FavoriteUsecase) Remove(ctx context.Context, ref favorite.Ref, actor string) (domain.FavoriteStatus, error) {
	actorID, err := favorite.ResolveActor(ctx, actor, uc.resolver)
	if err != nil {
		return domain.FavoriteStatus{}, err
	}
	target, err := uc.lookupTarget(ctx, ref)
	if err != nil {
		return domain.FavoriteStatus{}, err
	}

	if err := target.RemoveFavorite(ctx, actorID); err != nil {
		return domain.FavoriteStatus{}, errors.Wrap(err, "FavoriteUsecase.Remove")
	}
	uc.publish(ctx, domain.EventUnfavorited, actorID, ref)

	return uc.status(ctx, target, actorID)
}

func (uc *FavoriteUsecase) Toggle(ctx context.Context, ref favorite.Ref, actor string) (domain.FavoriteStatus, error) {
	actorID, err := favorite.ResolveActor(ctx, actor, uc.resolver)
	if err != nil {
		return domain.FavoriteStatus{}, err
	}
	target, err := uc.lookupTarget(ctx, ref)
	if err != nil {
		return domain.FavoriteStatus{}, err
	}

	state, err := target.ToggleFavorite(ctx, actorID)
	if err != nil {
		return domain.FavoriteStatus{}, errors.Wrap(err, "FavoriteUsecase.Toggle")
	}
	if state {
		uc.publish(ctx, domain.EventFavorited, actorID, ref)
	} else {
		uc.publish(ctx, domain.EventUnfavorited, actorID, ref)
	}

	return uc.status(ctx, target, actorID)
}

// Status reports the favorite state of ref. Without an actor, Favorited is
// false and only the count is meaningful.
func (uc *FavoriteUsecase) Status(ctx context.Context, ref favorite.Ref, actor string) (domain.FavoriteStatus, error) {
	actorID, err := favorite.ResolveActor(ctx, actor, uc.resolver)
	if err != nil && !errors.Is(err, favorite.ErrNoActor) {
		return domain.FavoriteStatus{}, err
	}
	target, err := uc.lookupTarget(ctx, ref)
	if err != nil {
		return domain.FavoriteStatus{}, err
	}
	return uc.status(ctx, target, actorID)
}

func (uc *FavoriteUsecase) status(ctx context.Context, target *favorite.Target, actorID string) (domain.FavoriteStatus, error) {
	snap, err := target.Snapshot(ctx)
	if err != nil {
		return domain.FavoriteStatus{}, errors.Wrap(err, "FavoriteUsecase.status")
	}

	favorited, err := target.IsFavorited(ctx, actorID, snap)
	if err != nil {
		return domain.FavoriteStatus{}, errors.Wrap(err, "FavoriteUsecase.status")
	}
	count, err := target.FavoritesCount(ctx, snap)
	if err != nil {
		return domain.FavoriteStatus{}, errors.Wrap(err, "FavoriteUsecase.status")
	}

	return domain.FavoriteStatus{
		Target:    target.Ref(),
		Actor:     actorID,
		Favorited: favorited,
		Count:     count,
	}, nil
}

// FavoritedBy returns the users who favorite ref.
func (uc *FavoriteUsecase) FavoritedBy(ctx context.Context, ref favorite.Ref) (map[string]domain.User, error) {
	target, err := uc.lookupTarget(ctx, ref)
	if err != nil {
		return nil, err
	}

	hydrated, err := target.FavoritedBy(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "FavoriteUsecase.FavoritedBy")
	}
	return favorite.TargetsAs[domain.User](hydrated), nil
}

// FavoritesOf lists the targets of targetType favorited by actor.
func (uc *FavoriteUsecase) FavoritesOf(ctx context.Context, actor, targetType string) (map[string]any, error) {
	actorID, err := favorite.ResolveActor(ctx, actor, uc.resolver)
	if err != nil {
		return nil, err
	}

	targets, err := uc.manager.ActorID(actorID).FavoriteTargetsOfType(ctx, targetType, nil)
	if err != nil {
		return nil, errors.Wrap(err, "FavoriteUsecase.FavoritesOf")
	}
	return targets, nil
}

func (uc *FavoriteUsecase) publish(ctx context.Context, typ, actorID string, ref favorite.Ref) {
	slog.InfoContext(
		ctx, typ,
		slog.String("actor", actorID),
		slog.String("target", ref.String()),
		slog.String("module", "favorite"),
	)

	if uc.events == nil {
		return
	}

	err := uc.events.Publish(ctx, domain.FavoriteEvent{
		Type:      typ,
		Actor:     actorID,
		Target:    ref,
		Timestamp: time.Now(),
	})
	if err != nil {
		slog.WarnContext(
			ctx, "failed to publish favorite event",
			slog.String("error", err.Error()),
			slog.String("module", "favorite"),
		)
	}
}

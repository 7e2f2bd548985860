package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/totegamma/concrnt-favorite/internal/domain"
)

// SignalService publishes favorite events on redis. A nil client disables it.
type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func Channel(event domain.FavoriteEvent) string {
	return "favorite:" + event.Target.String()
}

func (s *SignalService) Publish(ctx context.Context, event domain.FavoriteEvent) error {
	if s == nil || s.rdb == nil {
		return nil
	}

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, Channel(event), jsonstr).Err()
	if err != nil {
		return err
	}

	return nil
}

package providers

import (
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/totegamma/concrnt-favorite"
	"github.com/totegamma/concrnt-favorite/internal/config"
	"github.com/totegamma/concrnt-favorite/internal/domain"
	"github.com/totegamma/concrnt-favorite/internal/infrastructure/database"
	"github.com/totegamma/concrnt-favorite/internal/infrastructure/repository"
	favstore "github.com/totegamma/concrnt-favorite/repository"
)

// NewLogger builds the process logger at the configured level.
func NewLogger(level string) *slog.Logger {
	var lv slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		lv = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: lv}))
}

// NewDatabase opens the configured database.
func NewDatabase(conf config.Server) (*gorm.DB, error) {
	if conf.DBDriver == "sqlite" {
		return database.Open(conf.DBDriver, conf.SqlitePath)
	}
	return database.Open(conf.DBDriver, conf.PostgresDsn)
}

// MigrateDatabase applies migrations for the application models.
func MigrateDatabase(db *gorm.DB) error {
	return database.Migrate(db)
}

// NewRedis returns nil when no address is configured.
func NewRedis(conf config.Server) *redis.Client {
	return database.NewRedis(conf.RedisAddr, conf.RedisPassword, conf.RedisDB)
}

// NewFavoriteManager wires the gorm store and entity loaders.
func NewFavoriteManager(db *gorm.DB) *favorite.Manager {
	return favorite.NewManager(
		favstore.NewFavoriteRepository(db),
		repository.NewRegistry(db),
		domain.TypeUser,
	)
}

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/totegamma/concrnt-favorite"
	"github.com/totegamma/concrnt-favorite/internal/config"
	"github.com/totegamma/concrnt-favorite/internal/infrastructure/providers"
	"github.com/totegamma/concrnt-favorite/internal/infrastructure/repository"
	"github.com/totegamma/concrnt-favorite/internal/infrastructure/tracing"
	"github.com/totegamma/concrnt-favorite/internal/present/rest"
	restmiddleware "github.com/totegamma/concrnt-favorite/internal/present/rest/middleware"
	"github.com/totegamma/concrnt-favorite/internal/service"
	"github.com/totegamma/concrnt-favorite/internal/usecase"
)

func main() {
	conf, err := config.Load(config.Path())
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.SetDefault(providers.NewLogger(conf.Server.LogLevel))

	db, err := providers.NewDatabase(conf.Server)
	if err != nil {
		panic("failed to connect database")
	}

	err = providers.MigrateDatabase(db)
	if err != nil {
		panic("failed to migrate database")
	}

	e := echo.New()
	e.HideBanner = true

	if conf.Server.EnableTrace {
		shutdown, err := tracing.Setup(context.Background(), conf.Server.TraceEndpoint, "favorited")
		if err != nil {
			panic(err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
		e.Use(otelecho.Middleware("favorited"))
	}

	signal := service.NewSignalService(providers.NewRedis(conf.Server))
	auth := service.NewAuthService(conf.NodeInfo.Domain())

	favoriteUsecase := usecase.NewFavoriteUsecase(
		providers.NewFavoriteManager(db),
		favorite.ContextResolver{},
		signal,
	)
	entityUsecase := usecase.NewEntityUsecase(
		repository.NewUserRepository(db),
		repository.NewArticleRepository(db),
		repository.NewPostRepository(db),
	)

	authMiddleware := restmiddleware.NewAuthMiddleware(auth)

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(authMiddleware.IdentifyIdentity)

	rest.NewHandler(favoriteUsecase, entityUsecase, auth, conf.Server.DevTokens).RegisterRoutes(e)

	slog.Info(
		"favorited starting",
		slog.String("listen", conf.Server.Listen),
		slog.String("issuer", conf.NodeInfo.Issuer),
		slog.Bool("devTokens", conf.Server.DevTokens),
		slog.String("module", "main"),
	)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}

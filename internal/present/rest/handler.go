package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/totegamma/concrnt-favorite"
	"github.com/totegamma/concrnt-favorite/internal/domain"
	"github.com/totegamma/concrnt-favorite/internal/present/rest/presenter"
	"github.com/totegamma/concrnt-favorite/internal/service"
	"github.com/totegamma/concrnt-favorite/internal/usecase"
)

type Handler struct {
	favorite  *usecase.FavoriteUsecase
	entity    *usecase.EntityUsecase
	auth      *service.AuthService
	devTokens bool
}

// NewHandler creates the REST handler. devTokens exposes POST /token, which
// hands out a token for any existing user.
func NewHandler(
	favorite *usecase.FavoriteUsecase,
	entity *usecase.EntityUsecase,
	auth *service.AuthService,
	devTokens bool,
) *Handler {
	return &Handler{
		favorite:  favorite,
		entity:    entity,
		auth:      auth,
		devTokens: devTokens,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")

	if h.devTokens {
		g.POST("/token", h.handleToken)
	}

	g.POST("/users", h.handleCreateUser)
	g.GET("/users/:id", h.handleGetUser)
	g.GET("/users/:id/favorites/:type", h.handleUserFavorites)
	g.GET("/me/favorites/:type", h.handleMyFavorites)

	g.POST("/articles", h.handleCreateArticle)
	g.GET("/articles/:id", h.handleGetArticle)
	g.DELETE("/articles/:id", h.handleDeleteArticle)

	g.POST("/posts", h.handleCreatePost)
	g.GET("/posts/:id", h.handleGetPost)
	g.DELETE("/posts/:id", h.handleDeletePost)

	g.GET("/favorites/:type/:id", h.handleFavoriteStatus)
	g.POST("/favorites/:type/:id", h.handleAddFavorite)
	g.DELETE("/favorites/:type/:id", h.handleRemoveFavorite)
	g.POST("/favorites/:type/:id/toggle", h.handleToggleFavorite)
	g.GET("/favorites/:type/:id/users", h.handleFavoritedBy)
}

func targetRef(c echo.Context) favorite.Ref {
	return favorite.Ref{Type: c.Param("type"), ID: c.Param("id")}
}

// actorParam returns the ?actor= override. It is honored only when it names
// the authenticated actor.
func actorParam(c echo.Context) (string, error) {
	actor := c.QueryParam(domain.ActorQueryParam)
	if actor == "" {
		return "", nil
	}
	current, ok := favorite.ActorFromContext(c.Request().Context())
	if !ok {
		return "", favorite.ErrNoActor
	}
	if current != actor {
		return "", domain.ErrActorMismatch
	}
	return actor, nil
}

// --- auth ---

type tokenRequest struct {
	UserID string `json:"userID"`
}

func (h *Handler) handleToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.UserID == "" {
		return presenter.BadRequestMessage(c, "userID is required")
	}

	if _, err := h.entity.GetUser(ctx, req.UserID); err != nil {
		return presenter.Error(c, err)
	}

	token, err := h.auth.IssueToken(ctx, req.UserID)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"token": token})
}

// --- entities ---

type createUserRequest struct {
	Name string `json:"name"`
}

func (h *Handler) handleCreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	user, err := h.entity.CreateUser(c.Request().Context(), req.Name)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, user)
}

func (h *Handler) handleGetUser(c echo.Context) error {
	user, err := h.entity.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, user)
}

type createArticleRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (h *Handler) handleCreateArticle(c echo.Context) error {
	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	article, err := h.entity.CreateArticle(c.Request().Context(), req.Title, req.Body)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, article)
}

func (h *Handler) handleGetArticle(c echo.Context) error {
	article, err := h.entity.GetArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, article)
}

func (h *Handler) handleDeleteArticle(c echo.Context) error {
	if err := h.entity.DeleteArticle(c.Request().Context(), c.Param("id")); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

type createPostRequest struct {
	Content string `json:"content"`
}

func (h *Handler) handleCreatePost(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	post, err := h.entity.CreatePost(c.Request().Context(), req.Content)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, post)
}

func (h *Handler) handleGetPost(c echo.Context) error {
	post, err := h.entity.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, post)
}

func (h *Handler) handleDeletePost(c echo.Context) error {
	if err := h.entity.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// --- favorites ---

func (h *Handler) handleFavoriteStatus(c echo.Context) error {
	actor, err := actorParam(c)
	if err != nil {
		return presenter.Error(c, err)
	}

	status, err := h.favorite.Status(c.Request().Context(), targetRef(c), actor)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, status)
}

func (h *Handler) handleAddFavorite(c echo.Context) error {
	actor, err := actorParam(c)
	if err != nil {
		return presenter.Error(c, err)
	}

	status, err := h.favorite.Add(c.Request().Context(), targetRef(c), actor)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, status)
}

func (h *Handler) handleRemoveFavorite(c echo.Context) error {
	actor, err := actorParam(c)
	if err != nil {
		return presenter.Error(c, err)
	}

	status, err := h.favorite.Remove(c.Request().Context(), targetRef(c), actor)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, status)
}

func (h *Handler) handleToggleFavorite(c echo.Context) error {
	actor, err := actorParam(c)
	if err != nil {
		return presenter.Error(c, err)
	}

	status, err := h.favorite.Toggle(c.Request().Context(), targetRef(c), actor)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, status)
}

func (h *Handler) handleFavoritedBy(c echo.Context) error {
	users, err := h.favorite.FavoritedBy(c.Request().Context(), targetRef(c))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, users)
}

func (h *Handler) handleUserFavorites(c echo.Context) error {
	ctx := c.Request().Context()

	if _, err := h.entity.GetUser(ctx, c.Param("id")); err != nil {
		return presenter.Error(c, err)
	}

	targets, err := h.favorite.FavoritesOf(ctx, c.Param("id"), c.Param("type"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, targets)
}

func (h *Handler) handleMyFavorites(c echo.Context) error {
	targets, err := h.favorite.FavoritesOf(c.Request().Context(), "", c.Param("type"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, targets)
}

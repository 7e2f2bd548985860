package domain

const (
	RequesterIdCtxKey = "fv-requesterId"
)

const (
	ActorQueryParam = "actor"
)

// type discriminators stored in favorites.favoriteable_type
const (
	TypeUser    = "user"
	TypeArticle = "article"
	TypePost    = "post"
)

const (
	EventFavorited   = "favorited"
	EventUnfavorited = "unfavorited"
)

package domain

import (
	"time"

	"github.com/totegamma/concrnt-favorite"
)

// User is the actor side of favorites.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) FavoriteRef() favorite.Ref {
	return favorite.Ref{Type: TypeUser, ID: u.ID}
}

type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a Article) FavoriteRef() favorite.Ref {
	return favorite.Ref{Type: TypeArticle, ID: a.ID}
}

type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p Post) FavoriteRef() favorite.Ref {
	return favorite.Ref{Type: TypePost, ID: p.ID}
}

// FavoriteStatus is the favorite state of one target as seen by one actor.
type FavoriteStatus struct {
	Target    favorite.Ref `json:"target"`
	Actor     string       `json:"actor,omitempty"`
	Favorited bool         `json:"favorited"`
	Count     int64        `json:"count"`
}

// FavoriteEvent is published whenever a favorite is added or removed.
type FavoriteEvent struct {
	Type      string       `json:"type"`
	Actor     string       `json:"actor"`
	Target    favorite.Ref `json:"target"`
	Timestamp time.Time    `json:"timestamp"`
}

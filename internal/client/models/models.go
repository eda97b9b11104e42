// Package models holds the wire types exchanged with the newsline API.
// They are immutable snapshots of server state; the client never mutates
// them locally.
package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Post struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	AuthorID      string    `json:"authorId"`
	Author        *User     `json:"author,omitempty"`
	LikesCount    int       `json:"likesCount"`
	CommentsCount int       `json:"commentsCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is the payload of a successful sign-in or log-in exchange.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PageMeta is the pagination envelope metadata attached to every list
// response.
type PageMeta struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

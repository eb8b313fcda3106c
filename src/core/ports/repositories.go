// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"
	"time"

	"blogapi/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// TxManager runs a function inside a single storage transaction. Repository
// calls made with the ctx passed to fn join that transaction; fn returning
// an error rolls everything back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CommentRead is the denormalized read projection of a comment.
type CommentRead struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName"`
}

// BlogPostRead is the denormalized read projection of a post, merging the
// category name, the author name and the post's comments (oldest first).
type BlogPostRead struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	CreatedAt    time.Time     `json:"createdAt"`
	CategoryID   int64         `json:"categoryId"`
	CategoryName string        `json:"categoryName"`
	UserID       int64         `json:"userId"`
	UserName     string        `json:"userName"`
	Comments     []CommentRead `json:"comments"`
}

// Page is the envelope for paginated listings.
type Page[T any] struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
	Items      []T   `json:"items"`
}

// PostFilter narrows and pages a post listing. Search is a substring match
// on the title; an empty Search applies no title filter.
type PostFilter struct {
	CategoryID *int64
	Search     string
	Offset     int
	Limit      int
}

// UserRepository persists users. The exclude argument on the existence
// checks skips one user id, so a user updating their own profile does not
// collide with themselves; pass 0 to check against all users.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
	EmailExists(ctx context.Context, email string, exclude int64) (bool, error)
	UserNameExists(ctx context.Context, userName string, exclude int64) (bool, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// BlogPostRepository persists posts. Deleting a post cascades its comments
// at the storage layer.
type BlogPostRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BlogPost, error)
	// GetRead loads the full read projection of one post, comments included.
	GetRead(ctx context.Context, id int64) (*BlogPostRead, error)
	// List returns one page of read projections plus the total match count,
	// ordered by creation time descending.
	List(ctx context.Context, filter PostFilter) ([]BlogPostRead, int64, error)
	Create(ctx context.Context, post *domain.BlogPost) error
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id int64) error
	DeleteByAuthor(ctx context.Context, userID int64) error
}

// CommentRepository persists comments. Storage does not cascade user
// deletion to comments; that orchestration belongs to the service layer.
type CommentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	// ListByPost returns the post's comments ordered by creation time
	// ascending, with the author name denormalized in.
	ListByPost(ctx context.Context, postID int64) ([]CommentRead, error)
	Create(ctx context.Context, comment *domain.Comment) error
	UpdateContent(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
	DeleteByAuthor(ctx context.Context, userID int64) error
}

// CategoryRepository reads the fixed category set.
type CategoryRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]domain.Category, error)
}

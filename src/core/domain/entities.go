package domain

import "time"

// User is a registered account. UserName and Email are unique across users.
type User struct {
	ID           int64
	UserName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Category is one of the fixed, seeded categories. The core exposes no
// create/update/delete operation for categories.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BlogPost belongs to exactly one author and exactly one category.
type BlogPost struct {
	ID         int64
	Title      string
	Content    string
	UserID     int64
	CategoryID int64
	CreatedAt  time.Time
}

// Comment belongs to exactly one post and exactly one author.
type Comment struct {
	ID         int64
	Content    string
	BlogPostID int64
	UserID     int64
	CreatedAt  time.Time
}

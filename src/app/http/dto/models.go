// Package dto defines the request payloads bound from incoming JSON.
// Validation limits mirror what the service layer expects; binding
// failures short-circuit as 400 before any service runs.
package dto

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,max=50"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is the payload for PUT /api/auth/me. Absent fields
// retain their current values.
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=50"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// ChangePasswordRequest is the payload for PUT /api/auth/me/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// BlogPostCreateRequest is the payload for POST /api/blogposts.
type BlogPostCreateRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content" binding:"required,max=5000"`
	CategoryID int64  `json:"categoryId" binding:"required,min=1"`
}

// BlogPostUpdateRequest is the payload for PUT /api/blogposts/:id.
type BlogPostUpdateRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content" binding:"required,max=5000"`
	CategoryID int64  `json:"categoryId" binding:"required,min=1"`
}

// CommentCreateRequest is the payload for POST /api/blogposts/:id/comments.
type CommentCreateRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// CommentUpdateRequest is the payload for PUT /api/comments/:id.
type CommentUpdateRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

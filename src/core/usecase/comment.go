package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"blogapi/src/core/domain"
	"blogapi/src/core/ports"
	"blogapi/src/core/result"
)

// CommentService handles the comment lifecycle and enforces the
// no-self-comment rule.
type CommentService struct {
	comments ports.CommentRepository
	posts    ports.BlogPostRepository
	log      *slog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.BlogPostRepository, log *slog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, log: log}
}

func (s *CommentService) ListByPost(ctx context.Context, postID int64) (result.Result[[]ports.CommentRead], error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return result.Result[[]ports.CommentRead]{}, err
	}
	if comments == nil {
		comments = []ports.CommentRead{}
	}
	return result.Ok(comments), nil
}

// Create adds a comment by the caller on someone else's post. The author
// name in the returned projection comes from the caller's identity, not
// from a re-fetch.
func (s *CommentService) Create(ctx context.Context, postID int64, identity ports.Identity, content string) (result.Result[ports.CommentRead], error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if domain.IsNotFound(err) {
			return result.Fail[ports.CommentRead](http.StatusNotFound, "Blog post not found."), nil
		}
		return result.Result[ports.CommentRead]{}, err
	}

	if post.UserID == identity.UserID {
		return result.Fail[ports.CommentRead](http.StatusBadRequest, "You cannot comment on your own blog post."), nil
	}

	comment := &domain.Comment{
		Content:    content,
		BlogPostID: postID,
		UserID:     identity.UserID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return result.Result[ports.CommentRead]{}, err
	}

	return result.Created(ports.CommentRead{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UserID:    comment.UserID,
		UserName:  identity.UserName,
	}), nil
}

func (s *CommentService) Update(ctx context.Context, id, userID int64, content string) (result.Unit, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return result.Fail[result.Empty](http.StatusNotFound, "Comment not found."), nil
		}
		return result.Unit{}, err
	}

	if comment.UserID != userID {
		return result.Fail[result.Empty](http.StatusForbidden, "Forbidden."), nil
	}

	if err := s.comments.UpdateContent(ctx, id, content); err != nil {
		return result.Unit{}, err
	}

	return result.NoContent[result.Empty](), nil
}

func (s *CommentService) Delete(ctx context.Context, id, userID int64) (result.Unit, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return result.Fail[result.Empty](http.StatusNotFound, "Comment not found."), nil
		}
		return result.Unit{}, err
	}

	if comment.UserID != userID {
		return result.Fail[result.Empty](http.StatusForbidden, "Forbidden."), nil
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return result.Unit{}, err
	}

	return result.NoContent[result.Empty](), nil
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"blogapi/src/core/domain"
	"blogapi/src/core/ports"
	"blogapi/src/core/result"
)

// Listing bounds. Out-of-range requests are clamped to the defaults rather
// than rejected.
const (
	defaultPage     = 1
	defaultPageSize = 5
	maxPageSize     = 50
)

// BlogPostService handles the post lifecycle: paginated listing, lookup,
// creation, and owner-gated update/delete.
type BlogPostService struct {
	posts      ports.BlogPostRepository
	categories ports.CategoryRepository
	log        *slog.Logger
}

func NewBlogPostService(posts ports.BlogPostRepository, categories ports.CategoryRepository, log *slog.Logger) *BlogPostService {
	return &BlogPostService{posts: posts, categories: categories, log: log}
}

// List returns one page of post projections, newest first, optionally
// filtered by category and by a substring match on the title. It always
// succeeds; an empty page is a valid answer.
func (s *BlogPostService) List(ctx context.Context, categoryID *int64, search string, page, pageSize int) (result.Result[ports.Page[ports.BlogPostRead]], error) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	filter := ports.PostFilter{
		CategoryID: categoryID,
		Search:     strings.TrimSpace(search),
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	}

	items, total, err := s.posts.List(ctx, filter)
	if err != nil {
		return result.Result[ports.Page[ports.BlogPostRead]]{}, err
	}
	if items == nil {
		items = []ports.BlogPostRead{}
	}

	return result.Ok(ports.Page[ports.BlogPostRead]{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
		Items:      items,
	}), nil
}

func (s *BlogPostService) GetByID(ctx context.Context, id int64) (result.Result[ports.BlogPostRead], error) {
	post, err := s.posts.GetRead(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return result.Fail[ports.BlogPostRead](http.StatusNotFound, "Blog post not found."), nil
		}
		return result.Result[ports.BlogPostRead]{}, err
	}
	return result.Ok(*post), nil
}

func (s *BlogPostService) Create(ctx context.Context, userID int64, title, content string, categoryID int64) (result.Result[ports.BlogPostRead], error) {
	ok, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return result.Result[ports.BlogPostRead]{}, err
	}
	if !ok {
		return result.Fail[ports.BlogPostRead](http.StatusBadRequest, fmt.Sprintf("Category with id %d does not exist.", categoryID)), nil
	}

	post := &domain.BlogPost{
		Title:      title,
		Content:    content,
		UserID:     userID,
		CategoryID: categoryID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return result.Result[ports.BlogPostRead]{}, err
	}

	read, err := s.posts.GetRead(ctx, post.ID)
	if err != nil {
		return result.Result[ports.BlogPostRead]{}, err
	}

	s.log.Info("post created", "post_id", post.ID, "user_id", userID)

	return result.Created(*read), nil
}

func (s *BlogPostService) Update(ctx context.Context, id, userID int64, title, content string, categoryID int64) (result.Unit, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return result.Fail[result.Empty](http.StatusNotFound, "Blog post not found."), nil
		}
		return result.Unit{}, err
	}

	if post.UserID != userID {
		return result.Fail[result.Empty](http.StatusForbidden, "Forbidden."), nil
	}

	ok, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return result.Unit{}, err
	}
	if !ok {
		return result.Fail[result.Empty](http.StatusBadRequest, fmt.Sprintf("Category with id %d does not exist.", categoryID)), nil
	}

	post.Title = title
	post.Content = content
	post.CategoryID = categoryID

	if err := s.posts.Update(ctx, post); err != nil {
		return result.Unit{}, err
	}

	return result.NoContent[result.Empty](), nil
}

// Delete removes the post; storage cascades its comments.
func (s *BlogPostService) Delete(ctx context.Context, id, userID int64) (result.Unit, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return result.Fail[result.Empty](http.StatusNotFound, "Blog post not found."), nil
		}
		return result.Unit{}, err
	}

	if post.UserID != userID {
		return result.Fail[result.Empty](http.StatusForbidden, "Forbidden."), nil
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return result.Unit{}, err
	}

	s.log.Info("post deleted", "post_id", id, "user_id", userID)

	return result.NoContent[result.Empty](), nil
}

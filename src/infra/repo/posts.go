package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"blogapi/src/core/domain"
	"blogapi/src/core/ports"
	"blogapi/src/infra/db"
)

// BlogPostRepository persists posts in Postgres. Deleting a post cascades
// its comments via the comments FK.
type BlogPostRepository struct {
	base

	// searchCaseInsensitive switches title search between ILIKE and LIKE.
	searchCaseInsensitive bool
}

// NewBlogPostRepository constructs a post repository backed by Postgres.
func NewBlogPostRepository(pg *db.Postgres, searchCaseInsensitive bool, log *slog.Logger) *BlogPostRepository {
	return &BlogPostRepository{
		base:                  base{pool: pg.Pool, log: log},
		searchCaseInsensitive: searchCaseInsensitive,
	}
}

func (r *BlogPostRepository) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	const q = `
		SELECT post_id, title, content, user_id, category_id, created_at
		FROM blog_posts
		WHERE post_id = $1
	`
	var p domain.BlogPost
	if err := r.db(ctx).QueryRow(ctx, q, id).Scan(&p.ID, &p.Title, &p.Content, &p.UserID, &p.CategoryID, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("blog post")
		}
		return nil, err
	}
	return &p, nil
}

func (r *BlogPostRepository) GetRead(ctx context.Context, id int64) (*ports.BlogPostRead, error) {
	const q = `
		SELECT p.post_id, p.title, p.content, p.created_at,
		       p.category_id, c.name, p.user_id, u.user_name
		FROM blog_posts p
		JOIN categories c ON c.category_id = p.category_id
		JOIN users u ON u.user_id = p.user_id
		WHERE p.post_id = $1
	`
	var read ports.BlogPostRead
	err := r.db(ctx).QueryRow(ctx, q, id).Scan(
		&read.ID, &read.Title, &read.Content, &read.CreatedAt,
		&read.CategoryID, &read.CategoryName, &read.UserID, &read.UserName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("blog post")
		}
		return nil, err
	}

	comments, err := r.commentsFor(ctx, []int64{read.ID})
	if err != nil {
		return nil, err
	}
	read.Comments = comments[read.ID]
	if read.Comments == nil {
		read.Comments = []ports.CommentRead{}
	}
	return &read, nil
}

func (r *BlogPostRepository) List(ctx context.Context, filter ports.PostFilter) ([]ports.BlogPostRead, int64, error) {
	like := "LIKE"
	if r.searchCaseInsensitive {
		like = "ILIKE"
	}

	countQ := fmt.Sprintf(`
		SELECT count(*)
		FROM blog_posts p
		WHERE ($1::bigint IS NULL OR p.category_id = $1)
		  AND ($2::text = '' OR p.title %s '%%' || $2 || '%%')
	`, like)

	var total int64
	if err := r.db(ctx).QueryRow(ctx, countQ, filter.CategoryID, filter.Search).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQ := fmt.Sprintf(`
		SELECT p.post_id, p.title, p.content, p.created_at,
		       p.category_id, c.name, p.user_id, u.user_name
		FROM blog_posts p
		JOIN categories c ON c.category_id = p.category_id
		JOIN users u ON u.user_id = p.user_id
		WHERE ($1::bigint IS NULL OR p.category_id = $1)
		  AND ($2::text = '' OR p.title %s '%%' || $2 || '%%')
		ORDER BY p.created_at DESC, p.post_id DESC
		LIMIT $3 OFFSET $4
	`, like)

	rows, err := r.db(ctx).Query(ctx, listQ, filter.CategoryID, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		reads []ports.BlogPostRead
		ids   []int64
	)
	for rows.Next() {
		var read ports.BlogPostRead
		if err := rows.Scan(
			&read.ID, &read.Title, &read.Content, &read.CreatedAt,
			&read.CategoryID, &read.CategoryName, &read.UserID, &read.UserName,
		); err != nil {
			return nil, 0, err
		}
		reads = append(reads, read)
		ids = append(ids, read.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(ids) > 0 {
		comments, err := r.commentsFor(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range reads {
			reads[i].Comments = comments[reads[i].ID]
			if reads[i].Comments == nil {
				reads[i].Comments = []ports.CommentRead{}
			}
		}
	}

	return reads, total, nil
}

// commentsFor loads the comment projections of the given posts, oldest
// first, grouped by post id.
func (r *BlogPostRepository) commentsFor(ctx context.Context, postIDs []int64) (map[int64][]ports.CommentRead, error) {
	const q = `
		SELECT cm.comment_id, cm.content, cm.created_at, cm.user_id, u.user_name, cm.post_id
		FROM comments cm
		JOIN users u ON u.user_id = cm.user_id
		WHERE cm.post_id = ANY($1)
		ORDER BY cm.created_at ASC, cm.comment_id ASC
	`
	rows, err := r.db(ctx).Query(ctx, q, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byPost := make(map[int64][]ports.CommentRead)
	for rows.Next() {
		var (
			c      ports.CommentRead
			postID int64
		)
		if err := rows.Scan(&c.ID, &c.Content, &c.CreatedAt, &c.UserID, &c.UserName, &postID); err != nil {
			return nil, err
		}
		byPost[postID] = append(byPost[postID], c)
	}
	return byPost, rows.Err()
}

func (r *BlogPostRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	const q = `
		INSERT INTO blog_posts (title, content, user_id, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING post_id
	`
	return r.db(ctx).QueryRow(ctx, q, post.Title, post.Content, post.UserID, post.CategoryID, post.CreatedAt).Scan(&post.ID)
}

func (r *BlogPostRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	const q = `
		UPDATE blog_posts
		SET title = $2, content = $3, category_id = $4
		WHERE post_id = $1
	`
	res, err := r.db(ctx).Exec(ctx, q, post.ID, post.Title, post.Content, post.CategoryID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("blog post")
	}
	return nil
}

func (r *BlogPostRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM blog_posts WHERE post_id = $1`
	res, err := r.db(ctx).Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("blog post")
	}
	return nil
}

func (r *BlogPostRepository) DeleteByAuthor(ctx context.Context, userID int64) error {
	const q = `DELETE FROM blog_posts WHERE user_id = $1`
	_, err := r.db(ctx).Exec(ctx, q, userID)
	return err
}

package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"blogapi/src/core/domain"
	"blogapi/src/core/ports"
	"blogapi/src/infra/db"
)

// CommentRepository persists comments in Postgres.
type CommentRepository struct {
	base
}

// NewCommentRepository constructs a comment repository backed by Postgres.
func NewCommentRepository(pg *db.Postgres, log *slog.Logger) *CommentRepository {
	return &CommentRepository{base{pool: pg.Pool, log: log}}
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	const q = `
		SELECT comment_id, content, post_id, user_id, created_at
		FROM comments
		WHERE comment_id = $1
	`
	var c domain.Comment
	if err := r.db(ctx).QueryRow(ctx, q, id).Scan(&c.ID, &c.Content, &c.BlogPostID, &c.UserID, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("comment")
		}
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]ports.CommentRead, error) {
	const q = `
		SELECT cm.comment_id, cm.content, cm.created_at, cm.user_id, u.user_name
		FROM comments cm
		JOIN users u ON u.user_id = cm.user_id
		WHERE cm.post_id = $1
		ORDER BY cm.created_at ASC, cm.comment_id ASC
	`
	rows, err := r.db(ctx).Query(ctx, q, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []ports.CommentRead
	for rows.Next() {
		var c ports.CommentRead
		if err := rows.Scan(&c.ID, &c.Content, &c.CreatedAt, &c.UserID, &c.UserName); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const q = `
		INSERT INTO comments (content, post_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING comment_id
	`
	return r.db(ctx).QueryRow(ctx, q, comment.Content, comment.BlogPostID, comment.UserID, comment.CreatedAt).Scan(&comment.ID)
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	const q = `
		UPDATE comments
		SET content = $2
		WHERE comment_id = $1
	`
	res, err := r.db(ctx).Exec(ctx, q, id, content)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("comment")
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM comments WHERE comment_id = $1`
	res, err := r.db(ctx).Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("comment")
	}
	return nil
}

func (r *CommentRepository) DeleteByAuthor(ctx context.Context, userID int64) error {
	const q = `DELETE FROM comments WHERE user_id = $1`
	_, err := r.db(ctx).Exec(ctx, q, userID)
	return err
}

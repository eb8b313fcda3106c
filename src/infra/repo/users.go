package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"blogapi/src/core/domain"
	"blogapi/src/infra/db"
)

// UserRepository persists users in Postgres.
type UserRepository struct {
	base
}

// NewUserRepository constructs a user repository backed by Postgres.
func NewUserRepository(pg *db.Postgres, log *slog.Logger) *UserRepository {
	return &UserRepository{base{pool: pg.Pool, log: log}}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const q = `
		SELECT user_id, user_name, email, password_hash, created_at
		FROM users
		WHERE user_id = $1
	`
	var u domain.User
	if err := r.db(ctx).QueryRow(ctx, q, id).Scan(&u.ID, &u.UserName, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	const q = `
		SELECT user_id, user_name, email, password_hash, created_at
		FROM users
		WHERE user_name = $1
	`
	var u domain.User
	if err := r.db(ctx).QueryRow(ctx, q, userName).Scan(&u.ID, &u.UserName, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

// EmailExists reports whether any user other than exclude holds the email.
// Pass exclude = 0 to check against all users.
func (r *UserRepository) EmailExists(ctx context.Context, email string, exclude int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = $1 AND user_id <> $2
		)
	`
	var exists bool
	if err := r.db(ctx).QueryRow(ctx, q, email, exclude).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) UserNameExists(ctx context.Context, userName string, exclude int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE user_name = $1 AND user_id <> $2
		)
	`
	var exists bool
	if err := r.db(ctx).QueryRow(ctx, q, userName, exclude).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	const q = `
		INSERT INTO users (user_name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING user_id, created_at
	`
	err := r.db(ctx).QueryRow(ctx, q, user.UserName, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("username or email already in use")
		}
		return err
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	const q = `
		UPDATE users
		SET user_name = $2, email = $3
		WHERE user_id = $1
	`
	res, err := r.db(ctx).Exec(ctx, q, user.ID, user.UserName, user.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("username or email already in use")
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("user")
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const q = `
		UPDATE users
		SET password_hash = $2
		WHERE user_id = $1
	`
	res, err := r.db(ctx).Exec(ctx, q, id, passwordHash)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("user")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM users WHERE user_id = $1`
	res, err := r.db(ctx).Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("user")
	}
	return nil
}

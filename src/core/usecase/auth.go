package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"blogapi/src/core/domain"
	"blogapi/src/core/ports"
	"blogapi/src/core/result"
)

// AuthService handles the identity lifecycle: registration, login, profile
// updates, password changes and account deletion with its cross-entity
// cascade. It depends on the post and comment repositories directly (not on
// the other services) so the deletion cascade stays in one transaction.
type AuthService struct {
	users    ports.UserRepository
	posts    ports.BlogPostRepository
	comments ports.CommentRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	tx       ports.TxManager
	log      *slog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	posts ports.BlogPostRepository,
	comments ports.CommentRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	tx ports.TxManager,
	log *slog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		posts:    posts,
		comments: comments,
		hasher:   hasher,
		tokens:   tokens,
		tx:       tx,
		log:      log,
	}
}

// UserSnapshot is the identity view returned by Register and UpdateProfile.
type UserSnapshot struct {
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

// LoginOutput carries the issued token after a successful login.
type LoginOutput struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (result.Result[UserSnapshot], error) {
	taken, err := s.users.EmailExists(ctx, email, 0)
	if err != nil {
		return result.Result[UserSnapshot]{}, err
	}
	if taken {
		return result.Fail[UserSnapshot](http.StatusConflict, "Email is already in use."), nil
	}

	taken, err = s.users.UserNameExists(ctx, name, 0)
	if err != nil {
		return result.Result[UserSnapshot]{}, err
	}
	if taken {
		return result.Fail[UserSnapshot](http.StatusConflict, "Username is already in use."), nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return result.Result[UserSnapshot]{}, err
	}

	user := &domain.User{
		UserName:     name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Two registrations can race past the existence checks; the unique
		// index settles it and the loser gets the same conflict answer.
		if domain.IsConflict(err) {
			return result.Fail[UserSnapshot](http.StatusConflict, err.Error()), nil
		}
		return result.Result[UserSnapshot]{}, err
	}

	s.log.Info("user registered", "user_id", user.ID, "user_name", user.UserName)

	return result.Created(UserSnapshot{
		UserID:   user.ID,
		UserName: user.UserName,
		Email:    user.Email,
	}), nil
}

func (s *AuthService) Login(ctx context.Context, name, password string) (result.Result[LoginOutput], error) {
	user, err := s.users.GetByUserName(ctx, name)
	if err != nil {
		if domain.IsNotFound(err) {
			return result.Fail[LoginOutput](http.StatusUnauthorized, "Invalid credentials"), nil
		}
		return result.Result[LoginOutput]{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return result.Fail[LoginOutput](http.StatusUnauthorized, "Invalid credentials"), nil
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return result.Result[LoginOutput]{}, err
	}

	return result.Ok(LoginOutput{Token: token, UserID: user.ID}), nil
}

// UpdateProfile applies the supplied fields to the acting user's account.
// A nil or blank field retains the current value. Uniqueness collisions
// against a different user fail with Conflict.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, name, email *string) (result.Result[UserSnapshot], error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return result.Fail[UserSnapshot](http.StatusUnauthorized, "Unauthorized."), nil
		}
		return result.Result[UserSnapshot]{}, err
	}

	newEmail := supplied(email)
	newName := supplied(name)

	if newEmail != "" {
		taken, err := s.users.EmailExists(ctx, newEmail, user.ID)
		if err != nil {
			return result.Result[UserSnapshot]{}, err
		}
		if taken {
			return result.Fail[UserSnapshot](http.StatusConflict, "Email is already in use."), nil
		}
		user.Email = newEmail
	}

	if newName != "" {
		taken, err := s.users.UserNameExists(ctx, newName, user.ID)
		if err != nil {
			return result.Result[UserSnapshot]{}, err
		}
		if taken {
			return result.Fail[UserSnapshot](http.StatusConflict, "Username is already in use."), nil
		}
		user.UserName = newName
	}

	if err := s.users.Update(ctx, user); err != nil {
		if domain.IsConflict(err) {
			return result.Fail[UserSnapshot](http.StatusConflict, err.Error()), nil
		}
		return result.Result[UserSnapshot]{}, err
	}

	return result.Ok(UserSnapshot{
		UserID:   user.ID,
		UserName: user.UserName,
		Email:    user.Email,
	}), nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) (result.Unit, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return result.Fail[result.Empty](http.StatusUnauthorized, "Unauthorized."), nil
		}
		return result.Unit{}, err
	}

	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return result.Fail[result.Empty](http.StatusBadRequest, "Current password is incorrect."), nil
	}

	if s.hasher.Verify(newPassword, user.PasswordHash) {
		return result.Fail[result.Empty](http.StatusBadRequest, "New password must be different from current password."), nil
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return result.Unit{}, err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return result.Unit{}, err
	}

	return result.NoContent[result.Empty](), nil
}

// DeleteAccount removes everything the user owns, in one transaction:
// their comments first, then their posts (whose remaining comments cascade
// at the storage layer), then the user row. Storage deliberately does not
// cascade user deletion to comments, so the ordering here is load-bearing.
func (s *AuthService) DeleteAccount(ctx context.Context, userID int64) (result.Unit, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if domain.IsNotFound(err) {
			return result.Fail[result.Empty](http.StatusUnauthorized, "Unauthorized."), nil
		}
		return result.Unit{}, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.comments.DeleteByAuthor(ctx, userID); err != nil {
			return err
		}
		if err := s.posts.DeleteByAuthor(ctx, userID); err != nil {
			return err
		}
		return s.users.Delete(ctx, userID)
	})
	if err != nil {
		return result.Unit{}, err
	}

	s.log.Info("account deleted", "user_id", userID)

	return result.NoContent[result.Empty](), nil
}

// supplied dereferences an optional request field, treating nil and blank
// as absent.
func supplied(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

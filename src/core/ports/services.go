package ports

import "blogapi/src/core/domain"

// Identity is the authenticated caller of a protected operation. It is an
// immutable value produced outside the core from a previously-issued token
// and passed in explicitly; the core never re-derives or re-validates it.
type Identity struct {
	UserID   int64
	UserName string
}

// PasswordHasher is a one-way hash plus verify capability for passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// TokenIssuer turns an authenticated user into a signed token.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier validates a previously-issued token and recovers the
// identity it was issued for. Consumed by the transport's auth middleware,
// never by the core services.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

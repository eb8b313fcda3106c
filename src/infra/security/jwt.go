package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blogapi/src/core/domain"
	"blogapi/src/core/ports"
	"blogapi/src/infra/config"
)

// userClaims is the claim set stamped on issued tokens. The subject is the
// user id; the name claim lets protected operations use the caller's name
// without a re-fetch.
type userClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// JWTTokens implements ports.TokenIssuer and ports.TokenVerifier with
// HS256-signed JWTs.
type JWTTokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTTokens creates the token issuer/verifier from config.
func NewJWTTokens(cfg config.AuthConfig) *JWTTokens {
	return &JWTTokens{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
		ttl:    cfg.JWTTTL,
		now:    time.Now,
	}
}

// Issue signs a token for the user.
func (t *JWTTokens) Issue(user *domain.User) (string, error) {
	now := t.now()
	claims := userClaims{
		Name: user.UserName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and recovers the identity it was issued for.
func (t *JWTTokens) Verify(token string) (ports.Identity, error) {
	var claims userClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return t.now() }),
	)
	if err != nil {
		return ports.Identity{}, err
	}
	if !parsed.Valid {
		return ports.Identity{}, errors.New("invalid token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return ports.Identity{}, errors.New("invalid subject claim")
	}

	return ports.Identity{UserID: userID, UserName: claims.Name}, nil
}

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"blogapi/src/core/ports"
)

// stubVerifier accepts exactly one token and rejects everything else.
type stubVerifier struct {
	token    string
	identity ports.Identity
}

func (v stubVerifier) Verify(token string) (ports.Identity, error) {
	if token == v.token {
		return v.identity, nil
	}
	return ports.Identity{}, errors.New("bad token")
}

func newAuthRouter(verifier ports.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(verifier), func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": identity.UserID, "userName": identity.UserName})
	})
	return r
}

func TestAuthAcceptsValidBearerToken(t *testing.T) {
	verifier := stubVerifier{
		token:    "good-token",
		identity: ports.Identity{UserID: 7, UserName: "alice"},
	}
	r := newAuthRouter(verifier)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userName":"alice"`)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	r := newAuthRouter(stubVerifier{token: "good-token"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsNonBearerScheme(t *testing.T) {
	r := newAuthRouter(stubVerifier{token: "good-token"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsBadToken(t *testing.T) {
	r := newAuthRouter(stubVerifier{token: "good-token"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer forged-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetIdentityWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetIdentity(c)
	assert.False(t, ok)
}

package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/qa-forum/backend/internal/models"
	"github.com/emilythestrangee/qa-forum/backend/internal/service"
)

type fakeAuthn map[string]*models.User

func (f fakeAuthn) Authenticate(_ context.Context, token string) (*models.User, error) {
	if token == "broken-db" {
		return nil, errors.New("connection refused")
	}
	if u, ok := f[token]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("%w: bad token", service.ErrUnauthorized)
}

type observed struct {
	route, status string
}

type fakeObserver struct {
	seen []observed
}

func (f *fakeObserver) ObserveRequest(_, route, status string, _ time.Duration) {
	f.seen = append(f.seen, observed{route: route, status: status})
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(obs RequestObserver) *gin.Engine {
	authn := fakeAuthn{"good": {ID: "u1", Username: "alice"}}

	r := gin.New()
	r.Use(Logger(obs), Recovery())
	whoami := func(c *gin.Context) {
		user := GetUser(c.Request.Context())
		if user == nil {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user.Username})
	}
	r.GET("/required", RequireAuth(authn), whoami)
	r.GET("/optional", OptionalAuth(authn), whoami)
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func get(r http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	r := newRouter(nil)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid", "Bearer good", http.StatusOK, `{"user":"alice"}`},
		{"lower-case scheme", "bearer good", http.StatusOK, `{"user":"alice"}`},
		{"missing", "", http.StatusUnauthorized, `{"detail":"Not authenticated"}`},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, `{"detail":"Not authenticated"}`},
		{"empty token", "Bearer ", http.StatusUnauthorized, `{"detail":"Not authenticated"}`},
		{"invalid", "Bearer nope", http.StatusUnauthorized, `{"detail":"Could not validate credentials"}`},
		{"store failure", "Bearer broken-db", http.StatusInternalServerError, `{"detail":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(r, "/required", tt.header)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
			if tt.status == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	r := newRouter(nil)

	assert.JSONEq(t, `{"user":"alice"}`, get(r, "/optional", "Bearer good").Body.String())
	assert.JSONEq(t, `{"user":null}`, get(r, "/optional", "Bearer nope").Body.String())
	assert.JSONEq(t, `{"user":null}`, get(r, "/optional", "").Body.String())
}

func TestRecoveryAndObserver(t *testing.T) {
	obs := &fakeObserver{}
	r := newRouter(obs)

	rec := get(r, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, rec.Body.String())

	get(r, "/nowhere", "")

	require.Len(t, obs.seen, 2)
	assert.Equal(t, observed{route: "/panic", status: "500"}, obs.seen[0])
	assert.Equal(t, observed{route: "unmatched", status: "404"}, obs.seen[1])
}

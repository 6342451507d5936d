package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"dashboard/internal/auth"
	"dashboard/internal/config"
	"dashboard/internal/handler"
	"dashboard/internal/model"
	"dashboard/internal/service"
)

type stubAuthService struct{}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*model.User, string, string, error) {
	return &model.User{ID: uuid.New(), Name: name, Email: email}, "access", "refresh", nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, string, *model.User, error) {
	return "access", "refresh", &model.User{ID: uuid.New(), Email: email}, nil
}

func (s *stubAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	return "access", nil
}

func (s *stubAuthService) Logout(ctx context.Context, refreshToken string) error {
	return nil
}

type stubPostService struct{ created int }

func (s *stubPostService) CreatePost(ctx context.Context, authorID uuid.UUID, text string) (*model.PostView, error) {
	s.created++
	return &model.PostView{ID: uuid.New(), Text: text, AuthorID: authorID, AuthorName: "Anna Lee"}, nil
}

func (s *stubPostService) ListPosts(ctx context.Context) ([]model.PostView, error) {
	return []model.PostView{}, nil
}

type stubConnectionService struct{ created int }

func (s *stubConnectionService) CreateConnection(ctx context.Context, userID uuid.UUID, name, location string) (*model.Connection, error) {
	s.created++
	return &model.Connection{ID: uuid.New(), Name: name, Location: location, UserID: userID}, nil
}

func (s *stubConnectionService) ListConnections(ctx context.Context, userID uuid.UUID) ([]model.Connection, error) {
	return []model.Connection{}, nil
}

type stubCommunityService struct{ created int }

func (s *stubCommunityService) CreateCommunity(ctx context.Context, creatorID uuid.UUID, name string) (*model.Community, error) {
	s.created++
	return &model.Community{ID: uuid.New(), Name: name}, nil
}

func (s *stubCommunityService) ListCommunities(ctx context.Context) ([]model.Community, error) {
	return []model.Community{}, nil
}

type stubSearchService struct{}

func (s *stubSearchService) Search(ctx context.Context, query string) (*service.SearchResults, error) {
	return nil, nil
}

type testServer struct {
	echo        *echo.Echo
	posts       *stubPostService
	connections *stubConnectionService
	communities *stubCommunityService
}

func newTestServer() *testServer {
	cfg := &config.Config{JWTSecret: "test-secret"}
	posts := &stubPostService{}
	connections := &stubConnectionService{}
	communities := &stubCommunityService{}

	e := echo.New()
	Register(
		e,
		cfg,
		handler.NewAuthHandler(&stubAuthService{}),
		handler.NewPostHandler(posts),
		handler.NewConnectionHandler(connections),
		handler.NewCommunityHandler(communities),
		handler.NewSearchHandler(&stubSearchService{}),
		handler.NewSeedHandler(&stubAuthService{}, posts, communities),
	)

	return &testServer{echo: e, posts: posts, connections: connections, communities: communities}
}

func (ts *testServer) request(method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func testToken(t *testing.T, secret string) string {
	t.Helper()
	token, err := auth.NewJWTService(secret).GenerateAccessToken(uuid.New(), "anna@example.com")
	assert.NoError(t, err)
	return token
}

func TestSecuredRoutes_RequireToken(t *testing.T) {
	ts := newTestServer()

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/posts", ""},
		{http.MethodPost, "/api/posts", `{"text":"hi"}`},
		{http.MethodGet, "/api/connections", ""},
		{http.MethodPost, "/api/connections", `{"name":"Alice","location":"Berlin"}`},
		{http.MethodGet, "/api/communities", ""},
		{http.MethodPost, "/api/communities", `{"name":"Newcomers"}`},
		{http.MethodGet, "/api/search?q=anna", ""},
		{http.MethodGet, "/api/me", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := ts.request(tt.method, tt.path, "", tt.body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	// Rejected requests must have produced no side effects.
	assert.Zero(t, ts.posts.created)
	assert.Zero(t, ts.connections.created)
	assert.Zero(t, ts.communities.created)
}

func TestSecuredRoutes_RejectBadTokens(t *testing.T) {
	ts := newTestServer()
	valid := testToken(t, "test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{name: "tampered signature", token: valid + "xx"},
		{name: "wrong signing key", token: testToken(t, "other-secret")},
		{name: "not a jwt", token: "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.request(http.MethodPost, "/api/posts", tt.token, `{"text":"hi"}`)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
	assert.Zero(t, ts.posts.created)
}

func TestSecuredRoutes_AcceptValidToken(t *testing.T) {
	ts := newTestServer()
	token := testToken(t, "test-secret")

	rec := ts.request(http.MethodPost, "/api/posts", token, `{"text":"hi"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, ts.posts.created)

	rec = ts.request(http.MethodPost, "/api/connections", token, `{"name":"Alice","location":"Berlin"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, ts.connections.created)

	rec = ts.request(http.MethodPost, "/api/communities", token, `{"name":"Newcomers"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, ts.communities.created)

	rec = ts.request(http.MethodGet, "/api/posts", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPublicRoutes(t *testing.T) {
	ts := newTestServer()

	rec := ts.request(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(http.MethodPost, "/api/auth/signup", "", `{"name":"Anna Lee","email":"anna@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.request(http.MethodPost, "/api/auth/login", "", `{"email":"anna@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestValidation_BadRequestBodies(t *testing.T) {
	ts := newTestServer()
	token := testToken(t, "test-secret")

	rec := ts.request(http.MethodPost, "/api/posts", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, ts.posts.created)

	rec = ts.request(http.MethodPost, "/api/connections", token, `{"name":"Alice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, ts.connections.created)

	rec = ts.request(http.MethodPost, "/api/auth/signup", "", `{"name":"Anna","email":"not-an-email","password":"password123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/daan/miniblog/internal/api/dto"
	"github.com/daan/miniblog/internal/api/middleware"
	"github.com/daan/miniblog/internal/api/session"
	"github.com/daan/miniblog/internal/core/service"
	"github.com/daan/miniblog/internal/infrastructure/sqlite"
	"github.com/gin-gonic/gin"
)

const testSecretKey = "test-secret-key"

// testEnv holds all test dependencies
type testEnv struct {
	db     *sqlite.DB
	router *gin.Engine
}

// setupTestEnv creates a test environment with in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Use in-memory SQLite database
	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	// Create repositories
	userRepo := sqlite.NewUserRepository(db)
	postRepo := sqlite.NewPostRepository(db)

	// Create services
	authService := service.NewAuthService(userRepo, testSecretKey, "HS256")
	postService := service.NewPostService(postRepo)
	sessions := session.NewManager(testSecretKey, false)

	// Create handlers
	authHandler := NewAuthHandler(authService, sessions)
	postHandler := NewPostHandler(postService)
	authMiddleware := middleware.AuthMiddleware(authService, sessions)

	// Setup gin router in test mode with the full route contract
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.POST("/token", authHandler.Token)
	router.GET("/posts", postHandler.ListPosts)
	router.GET("/posts/:id", postHandler.GetPost)
	router.GET("/logout", authMiddleware, authHandler.Logout)
	router.POST("/posts", authMiddleware, postHandler.CreatePost)
	router.PUT("/posts/:id", authMiddleware, postHandler.UpdatePost)
	router.DELETE("/posts/:id", authMiddleware, postHandler.DeletePost)

	return &testEnv{
		db:     db,
		router: router,
	}
}

// cleanup closes the test database
func (env *testEnv) cleanup() {
	if env.db != nil {
		env.db.Close()
	}
}

// requestOpts carries per-request credentials
type requestOpts struct {
	cookies []*http.Cookie
	bearer  string
}

// request performs an HTTP request with an optional JSON body
func (env *testEnv) request(t *testing.T, method, path string, body interface{}, opts requestOpts) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range opts.cookies {
		req.AddCookie(cookie)
	}
	if opts.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+opts.bearer)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// signup creates a user and fails the test on any non-200 outcome
func (env *testEnv) signup(t *testing.T, username, password string) string {
	t.Helper()

	w := env.request(t, http.MethodPost, "/signup", map[string]string{
		"username": username,
		"password": password,
	}, requestOpts{})
	if w.Code != http.StatusOK {
		t.Fatalf("signup failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp dto.SignupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse signup response: %v", err)
	}
	return resp.UserID
}

// login authenticates and returns the session cookies
func (env *testEnv) login(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()

	w := env.request(t, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	}, requestOpts{})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login did not set a session cookie")
	}
	return cookies
}

// signupAndLogin is the common fixture for authenticated tests
func (env *testEnv) signupAndLogin(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()

	env.signup(t, username, password)
	return env.login(t, username, password)
}

// createPost creates a post as the given session and returns its id
func (env *testEnv) createPost(t *testing.T, cookies []*http.Cookie, title, content string) string {
	t.Helper()

	w := env.request(t, http.MethodPost, "/posts", map[string]string{
		"title":   title,
		"content": content,
	}, requestOpts{cookies: cookies})
	if w.Code != http.StatusOK {
		t.Fatalf("create post failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp dto.CreatePostResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse create response: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("create post returned an empty id")
	}
	return resp.ID
}

// parsePostResponse parses the response body into a single post
func parsePostResponse(t *testing.T, w *httptest.ResponseRecorder) dto.PostResponse {
	t.Helper()

	var resp dto.PostResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parsePostListResponse parses the response body into a list of posts
func parsePostListResponse(t *testing.T, w *httptest.ResponseRecorder) []dto.PostResponse {
	t.Helper()

	var resp []dto.PostResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseMessageResponse parses the response body into a message body
func parseMessageResponse(t *testing.T, w *httptest.ResponseRecorder) dto.MessageResponse {
	t.Helper()

	var resp dto.MessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse message response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseErrorResponse parses the response body into an error body
func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

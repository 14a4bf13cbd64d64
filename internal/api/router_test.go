package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/raktasangham/bloodbank-api/internal/api/handler"
	"github.com/raktasangham/bloodbank-api/internal/api/middleware"
	"github.com/raktasangham/bloodbank-api/internal/auth"
	"github.com/raktasangham/bloodbank-api/internal/core/domain"
	"github.com/raktasangham/bloodbank-api/internal/core/service"
)

// memAuthRepo is an in-memory AuthRepository keyed by email, mirroring the
// unique index the real store enforces.
type memAuthRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*domain.User
}

func newMemAuthRepo() *memAuthRepo {
	return &memAuthRepo{users: make(map[string]*domain.User)}
}

func (r *memAuthRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memAuthRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return nil, domain.ErrDuplicateEmail
	}
	r.nextID++
	cp := *user
	cp.ID = r.nextID
	cp.CreatedAt = time.Now()
	r.users[user.Email] = &cp
	out := cp
	return &out, nil
}

func (r *memAuthRepo) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == userID {
			return &domain.Profile{User: *u, RoleName: u.RoleID.String()}, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// newAuthApp wires the real middleware, service, handler and error handler
// around the in-memory repository.
func newAuthApp(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	issuer := auth.NewIssuer("router-test-secret", time.Hour)
	authService := service.NewAuthService(newMemAuthRepo(), issuer)
	authHandler := handler.NewAuthHandler(authService)
	requireAuth := middleware.Auth(issuer)

	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/profile/:id", authHandler.Profile, requireAuth)

	return e
}

func doJSON(e *echo.Echo, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	e := newAuthApp(t)

	// Register.
	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"name":"Nimal","email":"nimal@example.com","password":"secret1","phone":"0770000000","roleId":1}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("register response leaks password material: %s", rec.Body.String())
	}

	// Login.
	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"nimal@example.com","password":"secret1"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var loginResp struct {
		Token string `json:"token"`
		User  struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("login: invalid json: %v", err)
	}
	if loginResp.Token == "" || loginResp.User.ID == 0 {
		t.Fatalf("login: incomplete response: %s", rec.Body.String())
	}

	// Profile with the issued token.
	profilePath := fmt.Sprintf("/api/profile/%d", loginResp.User.ID)
	rec = doJSON(e, http.MethodGet, profilePath, "",
		map[string]string{"Authorization": "Bearer " + loginResp.Token})
	if rec.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "nimal@example.com") {
		t.Fatalf("profile: unexpected body: %s", rec.Body.String())
	}

	// No token at all.
	rec = doJSON(e, http.MethodGet, profilePath, "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("profile without token: expected 401, got %d", rec.Code)
	}

	// Same token with its last character flipped.
	tampered := loginResp.Token[:len(loginResp.Token)-1]
	if strings.HasSuffix(loginResp.Token, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}
	rec = doJSON(e, http.MethodGet, profilePath, "",
		map[string]string{"Authorization": "Bearer " + tampered})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("profile with tampered token: expected 403, got %d", rec.Code)
	}
}

func TestRegisterDuplicateEmailFlow(t *testing.T) {
	e := newAuthApp(t)

	body := `{"name":"Nimal","email":"nimal@example.com","password":"secret1","roleId":1}`
	if rec := doJSON(e, http.MethodPost, "/api/auth/register", body, nil); rec.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", rec.Code)
	}

	rec := doJSON(e, http.MethodPost, "/api/auth/register", body, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second register: expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "email already exists") {
		t.Fatalf("second register: unexpected body: %s", rec.Body.String())
	}
}

func TestLoginWrongPasswordFlow(t *testing.T) {
	e := newAuthApp(t)

	body := `{"name":"Nimal","email":"nimal@example.com","password":"secret1","roleId":1}`
	if rec := doJSON(e, http.MethodPost, "/api/auth/register", body, nil); rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"nimal@example.com","password":"wrong99"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("login wrong password: expected 401, got %d", rec.Code)
	}
}

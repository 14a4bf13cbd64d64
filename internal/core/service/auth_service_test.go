package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/raktasangham/bloodbank-api/internal/auth"
	"github.com/raktasangham/bloodbank-api/internal/core/domain"
	"github.com/raktasangham/bloodbank-api/internal/core/ports"
)

type stubAuthRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	// Mirrors the storage unique index on users(email).
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.nextID++
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

func (r *stubAuthRepo) GetProfile(_ context.Context, userID int64) (*domain.Profile, error) {
	for _, u := range r.users {
		if u.ID == userID {
			return &domain.Profile{User: *cloneUser(u), RoleName: u.RoleID.String()}, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestService() (*AuthService, *stubAuthRepo) {
	repo := newStubAuthRepo()
	return NewAuthService(repo, auth.NewIssuer("secret", time.Hour)), repo
}

func registerInput(email string) ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Alice",
		Email:    email,
		Password: "pass123",
		Phone:    "0771234567",
		RoleID:   domain.RoleDonor,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := newTestService()

	user, err := svc.Register(context.Background(), registerInput("alice@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_HashesAreSalted(t *testing.T) {
	svc, repo := newTestService()

	u1, err := svc.Register(context.Background(), registerInput("a@example.com"))
	if err != nil {
		t.Fatalf("register a: %v", err)
	}
	u2, err := svc.Register(context.Background(), registerInput("b@example.com"))
	if err != nil {
		t.Fatalf("register b: %v", err)
	}
	if u1.PasswordHash == u2.PasswordHash {
		t.Fatalf("two hashes of the same password must differ")
	}
	if len(repo.users) != 2 {
		t.Fatalf("expected 2 stored users, got %d", len(repo.users))
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newTestService()

	in := registerInput("x@example.com")
	in.Password = ""
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}

	in = registerInput("y@example.com")
	in.RoleID = 99
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown role, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, repo := newTestService()

	if _, err := svc.Register(context.Background(), registerInput("bob@example.com")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput("bob@example.com")); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("store must contain exactly one record, got %d", len(repo.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newTestService()
	issuer := auth.NewIssuer("secret", time.Hour)

	in := registerInput("carol@example.com")
	in.RoleID = domain.RoleStaff
	created, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "pass123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user id: %d", user.ID)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.UserID != created.ID {
		t.Fatalf("token id mismatch: got %d want %d", claims.UserID, created.ID)
	}
	if claims.Role != domain.RoleStaff {
		t.Fatalf("token role mismatch: got %v", claims.Role)
	}
}

func TestAuthService_Login_NoCredentialLeak(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), registerInput("dave@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, unknownUser := svc.Login(context.Background(), "ghost@example.com", "pass123")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPass.Error() != unknownUser.Error() {
		t.Fatalf("error shapes differ: %q vs %q", wrongPass, unknownUser)
	}
}

func TestAuthService_Profile(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Register(context.Background(), registerInput("eve@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	profile, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Email != "eve@example.com" {
		t.Fatalf("unexpected profile email: %s", profile.Email)
	}

	if _, err := svc.Profile(context.Background(), 999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

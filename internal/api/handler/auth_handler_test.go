package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/afyalink/health-system-api/internal/api/middleware"
	"github.com/afyalink/health-system-api/internal/core/domain"
	"github.com/afyalink/health-system-api/internal/core/ports"
)

type stubAuthService struct {
	registerOut *domain.User
	registerErr error
	loginToken  string
	loginOut    *domain.User
	loginErr    error
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	if s.registerOut != nil {
		return s.registerOut, nil
	}
	return &domain.User{ID: 1, Username: input.Username, Email: input.Email, Role: input.Role, CreatedAt: time.Now().UTC()}, nil
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	return s.loginToken, s.loginOut, s.loginErr
}

func (s *stubAuthService) Verify(context.Context, string) (domain.AuthContext, error) {
	return domain.AuthContext{}, nil
}

// newTestContext builds an echo context with the request validator wired the
// way the router does it.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (string, map[string]any) {
	t.Helper()

	var payload struct {
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload.Message, payload.Data
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newTestContext(t, http.MethodPost, "/api/users",
		`{"username":"alice","email":"alice@example.com","password":"pass123","role":"doctor"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	message, data := decodeEnvelope(t, rec)
	if message != "System user registered successfully" {
		t.Fatalf("unexpected message %q", message)
	}
	if data["username"] != "alice" {
		t.Fatalf("unexpected data: %v", data)
	}
	if _, ok := data["password"]; ok {
		t.Fatalf("password must not appear in the response")
	}
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newTestContext(t, http.MethodPost, "/api/users",
		`{"username":"alice","email":"not-an-email","password":"pass123"}`)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newTestContext(t, http.MethodPost, "/api/users", `{"username":"alice"}`)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})
	c, _ := newTestContext(t, http.MethodPost, "/api/users",
		`{"username":"alice","email":"alice@example.com","password":"pass123"}`)

	// conflicts flow to the central error handler as domain errors
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	now := time.Now().UTC()
	h := NewAuthHandler(&stubAuthService{
		loginToken: "signed.jwt.token",
		loginOut:   &domain.User{ID: 3, Username: "alice", Email: "alice@example.com", CreatedAt: now, LastLoginAt: &now},
	})
	c, rec := newTestContext(t, http.MethodPost, "/api/users/login",
		`{"username":"alice","password":"pass123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	message, data := decodeEnvelope(t, rec)
	if message != "Login successful" {
		t.Fatalf("unexpected message %q", message)
	}
	if data["token"] != "signed.jwt.token" {
		t.Fatalf("expected token in data, got %v", data)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, _ := newTestContext(t, http.MethodPost, "/api/users/login",
		`{"username":"alice","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newTestContext(t, http.MethodGet, "/api/users/me", "")
	c.Set(middleware.AuthContextKey, domain.AuthContext{UserID: 9, Username: "alice", Role: "admin"})

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	_, data := decodeEnvelope(t, rec)
	if data["username"] != "alice" || data["role"] != "admin" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newTestContext(t, http.MethodGet, "/api/users/me", "")

	err := h.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

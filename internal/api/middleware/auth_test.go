package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/afyalink/health-system-api/internal/core/domain"
	"github.com/afyalink/health-system-api/internal/core/ports"
)

type stubAuthService struct {
	principal domain.AuthContext
	err       error
	gotToken  string
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, nil
}

func (s *stubAuthService) Verify(_ context.Context, token string) (domain.AuthContext, error) {
	s.gotToken = token
	return s.principal, s.err
}

func invokeAuth(t *testing.T, svc ports.AuthService, header string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/clients/1", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(svc)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuth_Success(t *testing.T) {
	svc := &stubAuthService{principal: domain.AuthContext{UserID: 12, Username: "alice", Role: "doctor"}}

	c, err := invokeAuth(t, svc, "Bearer good-token")
	if err != nil {
		t.Fatalf("expected handler to run, got %v", err)
	}
	if svc.gotToken != "good-token" {
		t.Fatalf("expected raw token passed to verify, got %q", svc.gotToken)
	}

	principal, ok := c.Get(AuthContextKey).(domain.AuthContext)
	if !ok {
		t.Fatalf("expected AuthContext in request context")
	}
	if principal.UserID != 12 || principal.Username != "alice" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invokeAuth(t, &stubAuthService{}, "")

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	_, err := invokeAuth(t, &stubAuthService{}, "Basic dXNlcjpwYXNz")

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	svc := &stubAuthService{err: domain.ErrInvalidToken}

	_, err := invokeAuth(t, svc, "Bearer expired-token")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_CaseInsensitiveScheme(t *testing.T) {
	svc := &stubAuthService{principal: domain.AuthContext{UserID: 1}}

	if _, err := invokeAuth(t, svc, "bearer lower-scheme"); err != nil {
		t.Fatalf("expected lowercase scheme accepted, got %v", err)
	}
}

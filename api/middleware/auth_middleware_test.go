package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campuseats/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func requestWithToken(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireKindAcceptsMatchingToken(t *testing.T) {
	manager := utils.TokenManager{Secret: []byte("secret")}
	subject := uuid.New()
	token, _, err := manager.Issue(subject, utils.KindRestaurant)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	c, _ := requestWithToken(token)
	mw := AuthMiddleware{JWT: &manager}
	called := false
	err = mw.RequireRestaurant(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	if err != nil || !called {
		t.Fatalf("expected handler to run, err=%v called=%v", err, called)
	}

	id, ok := AccountIDFromContext(c)
	if !ok || id != subject {
		t.Fatalf("account id not set: %v %v", id, ok)
	}
	kind, ok := KindFromContext(c)
	if !ok || kind != utils.KindRestaurant {
		t.Fatalf("kind not set: %q %v", kind, ok)
	}
}

func TestRequireKindRejectsMissingAndInvalidTokens(t *testing.T) {
	manager := utils.TokenManager{Secret: []byte("secret")}
	mw := AuthMiddleware{JWT: &manager}
	next := func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	}

	c, rec := requestWithToken("")
	if err := mw.RequireUser(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing token, got %d", rec.Code)
	}

	c, rec = requestWithToken("not-a-jwt")
	if err := mw.RequireUser(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", rec.Code)
	}
}

func TestRequireKindRejectsWrongKind(t *testing.T) {
	manager := utils.TokenManager{Secret: []byte("secret")}
	token, _, err := manager.Issue(uuid.New(), utils.KindUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	c, rec := requestWithToken(token)
	mw := AuthMiddleware{JWT: &manager}
	err = mw.RequireAdmin(func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})(c)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong kind, got %d", rec.Code)
	}
}

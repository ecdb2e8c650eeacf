package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeAuthenticator implements Authenticator for testing.
type fakeAuthenticator struct {
	login string
	err   error
}

func (f *fakeAuthenticator) VerifyToken(token string) (string, error) {
	return f.login, f.err
}

// dummyHandler records whether it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

func TestBearerAuth_LoginPathBypass(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeAuthenticator{})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/user", nil)
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Error("expected next handler to be called for /user")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", rec.Code)
	}
}

func TestBearerAuth_MissingToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeAuthenticator{})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/subject", nil)
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestBearerAuth_WrongScheme(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeAuthenticator{login: "alice"})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/subject", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called for non-bearer auth")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeAuthenticator{err: errors.New("expired")})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/subject", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called for an invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestBearerAuth_ValidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&fakeAuthenticator{login: "alice"})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/subject", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Fatal("expected next handler to be called")
	}
	if got := GetUserFromContext(dummy.ctx); got != "alice" {
		t.Errorf("expected login alice in context, got %q", got)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	if got := GetUserFromContext(context.Background()); got != "" {
		t.Errorf("expected empty login, got %q", got)
	}
}

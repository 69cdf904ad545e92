// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

type fakeAuthn struct {
	authed bool
	admin  bool
}

func (f fakeAuthn) IsAuthenticated() bool { return f.authed }
func (f fakeAuthn) IsAdmin() bool         { return f.admin }

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestRequireAuth_RedirectsAnonymous(t *testing.T) {
	inner, called := okHandler()
	handler := RequireAuth(fakeAuthn{})(inner)

	req := httptest.NewRequest(http.MethodGet, "/admin/articles?page=2", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if *called {
		t.Error("next handler must not run for anonymous requests")
	}
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}

	loc, err := url.Parse(rr.Header().Get("Location"))
	if err != nil {
		t.Fatalf("bad Location: %v", err)
	}
	if loc.Path != "/login" {
		t.Errorf("redirect path = %s, want /login", loc.Path)
	}
	if got := loc.Query().Get("redirect"); got != "/admin/articles?page=2" {
		t.Errorf("redirect param = %q, want the original URL", got)
	}
}

func TestRequireAuth_PassesAuthenticated(t *testing.T) {
	inner, called := okHandler()
	handler := RequireAuth(fakeAuthn{authed: true})(inner)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if !*called {
		t.Error("next handler should have been called")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		authn    fakeAuthn
		wantCode int
	}{
		{"anonymous", fakeAuthn{}, http.StatusForbidden},
		{"plain user", fakeAuthn{authed: true}, http.StatusForbidden},
		{"admin", fakeAuthn{authed: true, admin: true}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner, _ := okHandler()
			handler := RequireAdmin(tt.authn)(inner)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin", nil))
			if rr.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantCode)
			}
		})
	}
}

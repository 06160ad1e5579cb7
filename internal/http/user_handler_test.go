package http

import (
	"net/http"
	"testing"

	"ai-listener/internal/service"
)

func TestUserHandlerRegister_Success(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := performRequest(ts.router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":     "sam_1",
		"email":        "sam@example.com",
		"password":     "secret1",
		"display_name": "Sam",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	var resp struct {
		User   map[string]any    `json:"user"`
		Tokens service.TokenPair `json:"tokens"`
	}
	decodeBody(t, rec, &resp)
	if resp.User["username"] != "sam_1" || resp.Tokens.AccessToken == "" || resp.Tokens.TokenType != "bearer" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if _, leaked := resp.User["password_hash"]; leaked {
		t.Fatal("expected password hash to stay out of the response")
	}
}

func TestUserHandlerRegister_Errors(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.login(t, "taken@example.com")

	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "missing fields", body: map[string]string{}},
		{name: "weak password", body: map[string]string{"email": "a@example.com", "username": "alice", "password": "123"}},
		{name: "duplicate email", body: map[string]string{"email": "taken@example.com", "username": "other", "password": "secret1"}},
		{name: "bad email", body: map[string]string{"email": "nope", "password": "secret1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performRequest(ts.router, http.MethodPost, "/api/auth/register", "", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestUserHandlerLogin(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.login(t, "sam@example.com")

	rec := performRequest(ts.router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "SAM@example.com",
		"password": "secret1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = performRequest(ts.router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "sam@example.com",
		"password": "wrong-password",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestUserHandlerRefreshAndLogout(t *testing.T) {
	ts := newTestServer(t, nil)
	rec := performRequest(ts.router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "sam@example.com",
		"password": "secret1",
	})
	var resp struct {
		Tokens service.TokenPair `json:"tokens"`
	}
	decodeBody(t, rec, &resp)

	rec = performRequest(ts.router, http.MethodPost, "/api/auth/refresh", "", map[string]string{
		"refresh_token": resp.Tokens.RefreshToken,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var refreshed struct {
		Tokens service.TokenPair `json:"tokens"`
	}
	decodeBody(t, rec, &refreshed)

	rec = performRequest(ts.router, http.MethodPost, "/api/auth/refresh", "", map[string]string{
		"refresh_token": resp.Tokens.RefreshToken,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected rotated refresh token to be rejected, got %d", rec.Code)
	}

	rec = performRequest(ts.router, http.MethodPost, "/api/auth/logout", "", map[string]string{
		"refresh_token": refreshed.Tokens.RefreshToken,
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	rec = performRequest(ts.router, http.MethodPost, "/api/auth/refresh", "", map[string]string{
		"refresh_token": refreshed.Tokens.RefreshToken,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected revoked token to be rejected, got %d", rec.Code)
	}
}

func TestUserHandlerMe(t *testing.T) {
	ts := newTestServer(t, nil)
	userID, token := ts.login(t, "sam@example.com")

	rec := performRequest(ts.router, http.MethodGet, "/api/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, rec, &resp)
	if resp.User.ID != userID {
		t.Fatalf("expected %s, got %s", userID, resp.User.ID)
	}

	if rec := performRequest(ts.router, http.MethodGet, "/api/auth/me", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

package users_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"resume-manager/internal/bootstrap"
	"resume-manager/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		JWTSecret:       "test-secret-0123456789abcdef",
		TokenTTL:        time.Hour,
		BcryptCost:      bcrypt.MinCost,
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRegisterLoginAndListScenario(t *testing.T) {
	router := newTestRouter(t)

	// Register.
	resp := doJSON(t, router, http.MethodPost, "/api/v1/register", "", gin.H{
		"email": "a@x.com", "password": "pw1",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var registered struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&registered); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if registered.ID == "" || registered.Email != "a@x.com" {
		t.Fatalf("unexpected register response: %+v", registered)
	}
	if bytes.Contains(resp.Body.Bytes(), []byte("password")) {
		t.Fatalf("register response must not carry a password field")
	}

	// Same email again fails with duplicate_email.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/register", "", gin.H{
		"email": "a@x.com", "password": "pw2",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte("duplicate_email")) {
		t.Fatalf("expected duplicate_email code, got %s", resp.Body.String())
	}

	// Wrong password fails with invalid_credentials.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/login", "", gin.H{
		"email": "a@x.com", "password": "wrong",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("wrong-password login: expected 400, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte("invalid_credentials")) {
		t.Fatalf("expected invalid_credentials code, got %s", resp.Body.String())
	}

	// Correct login yields a bearer token.
	resp = doJSON(t, router, http.MethodPost, "/api/v1/login", "", gin.H{
		"email": "a@x.com", "password": "pw1",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var login struct {
		AccessToken string `json:"accessToken"`
		TokenType   string `json:"tokenType"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if login.AccessToken == "" || login.TokenType != "bearer" {
		t.Fatalf("unexpected login response: %+v", login)
	}

	// Create two resumes and list them in creation order.
	for _, title := range []string{"Resume 1", "Resume 2"} {
		resp = doJSON(t, router, http.MethodPost, "/api/v1/resumes", login.AccessToken, gin.H{
			"title": title, "content": "Content of " + title,
		})
		if resp.Code != http.StatusOK {
			t.Fatalf("create %s: expected 200, got %d: %s", title, resp.Code, resp.Body.String())
		}
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/resumes", login.AccessToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.Code)
	}
	var list []struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(list) != 2 || list[0].Title != "Resume 1" || list[1].Title != "Resume 2" {
		t.Fatalf("expected both resumes in creation order, got %+v", list)
	}
}

func TestMeRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/me", "", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}

func TestMeReturnsIdentity(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/register", "", gin.H{
		"email": "me@x.com", "password": "pw1",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", resp.Code)
	}
	resp = doJSON(t, router, http.MethodPost, "/api/v1/login", "", gin.H{
		"email": "me@x.com", "password": "pw1",
	})
	var login struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/me", login.AccessToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp.Code)
	}
	var me struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		t.Fatalf("decode me response: %v", err)
	}
	if me.Email != "me@x.com" {
		t.Fatalf("expected me@x.com, got %s", me.Email)
	}
}

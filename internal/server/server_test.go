package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/CHARAN123567888880/SyntaxRush/internal/catalog"
)

type failingUserStore struct{}

func (failingUserStore) InsertUser(context.Context, string, string) error {
	return errors.New("mongo down")
}

func newTestRouter(users UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New(users, catalog.New()).Router()
}

func TestRegisterCreatesUser(t *testing.T) {
	users := &MemoryUserStore{}
	router := newTestRouter(users)

	body := strings.NewReader(`{"username":"alice","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "User registered" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
	if len(users.Users) != 1 || users.Users[0].Username != "alice" {
		t.Fatalf("user not stored: %+v", users.Users)
	}
}

func TestRegisterRejectsBadPayload(t *testing.T) {
	router := newTestRouter(&MemoryUserStore{})

	for _, body := range []string{`{not json`, `{"username":"alice"}`, `{}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", body, w.Code)
		}
	}
}

func TestRegisterStoreFailure(t *testing.T) {
	router := newTestRouter(failingUserStore{})

	body := strings.NewReader(`{"username":"alice","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestSnippetsReturnsAllCode(t *testing.T) {
	cat := catalog.New()
	router := newTestRouter(&MemoryUserStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/snippets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var snippets []string
	if err := json.Unmarshal(w.Body.Bytes(), &snippets); err != nil {
		t.Fatalf("decode snippets: %v", err)
	}
	if len(snippets) != len(cat.AllCode()) {
		t.Fatalf("expected %d snippets, got %d", len(cat.AllCode()), len(snippets))
	}
}

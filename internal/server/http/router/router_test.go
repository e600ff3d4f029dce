package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/userhub/userhub/internal/server/http/dto"
	"github.com/userhub/userhub/internal/server/http/handlers"
	testhelpers "github.com/userhub/userhub/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(testhelpers.UserFacadeStub{}, logger)

	body, _ := json.Marshal(dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for create, got %d", resp.Code)
	}
	if resp.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header on response")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for list, got %d", resp.Code)
	}
	var users []dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &users); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one user, got %d", len(users))
	}

	req = httptest.NewRequest(http.MethodGet, "/api/users/1", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for get by id, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/users/username/alice", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for get by username, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}
}

var _ handlers.AccountFacade = testhelpers.UserFacadeStub{}

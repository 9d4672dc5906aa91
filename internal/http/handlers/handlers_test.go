package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// Routes whose failure paths never reach the database can be exercised with
// a nil pool.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil)
	r := gin.New()
	r.POST("/api/v1/tasks", h.AddTask)
	r.DELETE("/api/v1/tasks/:id", h.DeleteTask)
	r.GET("/api/v1/whoami", h.WhoAmI)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddTaskEmptyTitleIsValidationFailure(t *testing.T) {
	r := testRouter()
	w := doJSON(t, r, "POST", "/api/v1/tasks", `{"title":"","description":"desc"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp["error"], "title") {
		t.Fatalf("expected title validation message, got %q", resp["error"])
	}
}

func TestAddTaskOverlongTitle(t *testing.T) {
	r := testRouter()
	title := strings.Repeat("x", 300)
	w := doJSON(t, r, "POST", "/api/v1/tasks", `{"title":"`+title+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAddTaskMalformedBody(t *testing.T) {
	r := testRouter()
	w := doJSON(t, r, "POST", "/api/v1/tasks", `{"title":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDeleteTaskNonNumericID(t *testing.T) {
	r := testRouter()
	w := doJSON(t, r, "DELETE", "/api/v1/tasks/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestWhoAmIFromHeaders(t *testing.T) {
	r := testRouter()
	req := httptest.NewRequest("GET", "/api/v1/whoami", nil)
	req.Header.Set("X-Goog-Authenticated-User-Email", "accounts.google.com:user@example.com")
	req.Header.Set("X-Goog-Authenticated-User-Id", "accounts.google.com:42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["email"] != "user@example.com" {
		t.Errorf("email = %q", resp["email"])
	}
	if resp["user_id"] != "42" {
		t.Errorf("user_id = %q", resp["user_id"])
	}
}

func TestWhoAmIFromQueryParams(t *testing.T) {
	r := testRouter()
	w := doJSON(t, r, "GET",
		"/api/v1/whoami?X-Goog-Authenticated-User-Email=accounts.google.com%3Auser%40example.com", "")

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["email"] != "user@example.com" {
		t.Errorf("email = %q", resp["email"])
	}
	if resp["user_id"] != "N/A" {
		t.Errorf("user_id = %q, want N/A", resp["user_id"])
	}
}

func TestWhoAmIUnauthenticated(t *testing.T) {
	r := testRouter()
	w := doJSON(t, r, "GET", "/api/v1/whoami", "")

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["email"] != "Not Authenticated" {
		t.Errorf("email = %q, want Not Authenticated", resp["email"])
	}
	if resp["user_id"] != "N/A" {
		t.Errorf("user_id = %q, want N/A", resp["user_id"])
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesToken(t *testing.T) {
	auth := NewAuthHandler("eksperts", "tame2024")
	router := newTestRouter()
	router.POST("/api/login", auth.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"user": "eksperts", "password": "tame2024"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "eksperts", body["user"])
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	auth := NewAuthHandler("eksperts", "tame2024")
	router := newTestRouter()
	router.POST("/api/login", auth.Login)

	cases := []string{
		`{"user": "eksperts", "password": "nepareiza"}`,
		`{"user": "cits", "password": "tame2024"}`,
		`{}`,
	}
	for _, payload := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(payload))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "payload %s", payload)
	}
}

func TestLoginRejectsBadPayload(t *testing.T) {
	auth := NewAuthHandler("eksperts", "tame2024")
	router := newTestRouter()
	router.POST("/api/login", auth.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("not json"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireAuth(t *testing.T) {
	auth := NewAuthHandler("eksperts", "tame2024")
	router := newTestRouter()
	router.POST("/api/login", auth.Login)
	router.GET("/api/secure", auth.RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// No token.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/secure", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Made-up token.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/secure", nil)
	req.Header.Set("Authorization", "Bearer izdomats")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token from a real login.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"user": "eksperts", "password": "tame2024"}`))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/secure", nil)
	req.Header.Set("Authorization", "Bearer "+body["token"])
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

package handlers

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler gates the API behind the single expert account. Credentials
// come from the configuration; there is no user registry and no password
// storage, the tool serves one assessor per deployment.
type AuthHandler struct {
	user     string
	password string

	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewAuthHandler creates the login handler for the configured account.
func NewAuthHandler(user, password string) *AuthHandler {
	return &AuthHandler{
		user:     user,
		password: password,
		tokens:   make(map[string]struct{}),
	}
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// Login authenticates the expert account and issues a session token.
// @Summary Log in
// @Description Authenticates the expert account and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Account credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendJSONError(c, http.StatusBadRequest, "Invalid login payload")
		return
	}

	if req.User != h.user || req.Password != h.password {
		SendJSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token := uuid.New().String()
	h.mu.Lock()
	h.tokens[token] = struct{}{}
	h.mu.Unlock()

	SendJSONResponse(c, http.StatusOK, gin.H{
		"token": token,
		"user":  h.user,
	})
}

// RequireAuth rejects requests without a valid bearer token.
func (h *AuthHandler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" || !h.validToken(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   true,
				"message": "Authorization required",
			})
			return
		}
		c.Next()
	}
}

func (h *AuthHandler) validToken(token string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.tokens[token]
	return ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

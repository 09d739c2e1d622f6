package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/auth"
	"github.com/portfolio-content-api/internal/config"
	"github.com/rs/zerolog"
)

// AuthHandler issues admin session tokens
type AuthHandler struct {
	cfg *config.AuthConfig
	log zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(cfg *config.AuthConfig, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg: cfg,
		log: log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := auth.VerifyPassword(h.cfg.PasswordHash, req.Password); err != nil {
		h.log.Warn().Str("client_ip", c.ClientIP()).Msg("Failed admin login attempt")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := auth.IssueToken(h.cfg.JWTSecret, h.cfg.TokenTTL)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to sign session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": int(h.cfg.TokenTTL.Seconds()),
	})
}

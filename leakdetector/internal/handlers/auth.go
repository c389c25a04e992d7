package handlers

import (
	"net/http"

	"profit_leak/leakdetector/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	clients *auth.ClientRegistry
	tokens  *auth.TokenManager
	logger  *logrus.Logger
}

// NewAuthHandler constructs the login and refresh endpoints.
func NewAuthHandler(clients *auth.ClientRegistry, tokens *auth.TokenManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{clients: clients, tokens: tokens, logger: logger}
}

// Login exchanges client credentials for an access and refresh token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		ClientID string `json:"client_id" binding:"required"`
		Secret   string `json:"secret" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	log := h.logger.WithFields(logrus.Fields{"component": "auth", "client": req.ClientID})
	if !h.clients.Authenticate(req.ClientID, req.Secret) {
		log.Warn("login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	accessToken, err := h.tokens.GenerateAccessToken(req.ClientID, auth.RoleAnalyst)
	if err != nil {
		log.WithError(err).Error("access token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	refreshToken, err := h.tokens.GenerateRefreshToken(req.ClientID, auth.RoleAnalyst)
	if err != nil {
		log.WithError(err).Error("refresh token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	log.Info("login success")

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// Refresh validates a refresh token and issues a new access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, ok := auth.BearerToken(c.GetHeader("Authorization"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Token"})
		return
	}

	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Token"})
		return
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Token Type"})
		return
	}

	accessToken, err := h.tokens.GenerateAccessToken(claims.ClientID, claims.Role)
	if err != nil {
		h.logger.WithError(err).Error("access token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

// internal/handlers/auth.go
package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/hautevault/boutique-backend/internal/config"
	"github.com/hautevault/boutique-backend/internal/utils"
)

type AuthHandler struct {
	cfg config.AdminConfig
}

func NewAuthHandler(cfg config.AdminConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login exchanges the shared admin password for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, utils.CodeBadRequest, nil)
		return
	}

	if h.cfg.Password == "" && h.cfg.PasswordHash == "" {
		utils.ServerErrorResponse(c, utils.CodeServerNotConfigured, "Missing ADMIN_PASSWORD")
		return
	}

	if !h.passwordMatches(req.Password) {
		utils.ErrorResponse(c, http.StatusUnauthorized, utils.CodeInvalidCredentials, nil)
		return
	}

	token, err := utils.SignAdminToken(h.cfg.TokenTTL)
	if err != nil {
		utils.ServerErrorResponse(c, utils.CodeTokenError, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) passwordMatches(candidate string) bool {
	if h.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.cfg.PasswordHash), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(h.cfg.Password), []byte(candidate)) == 1
}

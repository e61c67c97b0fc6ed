package handlers

import (
	"net/http"
	"strings"
	"time"

	userRepo "vango/database/repository/user"
	"vango/models"
	"vango/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AuthHandler issues admin JWTs.
type AuthHandler struct {
	Users userRepo.UserRepository
}

func NewAuthHandler(users userRepo.UserRepository) *AuthHandler {
	return &AuthHandler{Users: users}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler authenticates an admin by email and password. Wrong email and
// wrong password produce the same response.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	user, err := h.Users.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}
	if user == nil || user.Role != models.RoleAdmin ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, adminTokenTTL)
	if err != nil {
		utils.GetLogger().Error("failed to sign admin token", zap.String("userID", user.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", "could not issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(adminTokenTTL.Seconds()),
		"user":      gin.H{"id": user.ID, "name": user.Name, "role": user.Role},
	})
}

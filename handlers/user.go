package handlers

import (
	"net/http"
	"strings"

	userRepo "vango/database/repository/user"
	"vango/models"
	"vango/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler serves admin-facing user management endpoints.
type UserHandler struct {
	Repo userRepo.UserRepository
}

func NewUserHandler(repo userRepo.UserRepository) *UserHandler {
	return &UserHandler{Repo: repo}
}

// createUserRequest accepts an optional plaintext password, hashed before
// storage. Only admin accounts need one.
type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *UserHandler) ListHandler(c *gin.Context) {
	users, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve users", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetHandler(c *gin.Context) {
	user, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "User not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload", err.Error())
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RoleAdmin {
		utils.JSONError(c, http.StatusBadRequest, "Invalid role", "role must be customer or admin")
		return
	}
	if role == models.RoleAdmin && req.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Admin accounts require a password", "")
		return
	}

	user := models.User{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Phone: strings.TrimSpace(req.Phone),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Role:  role,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to hash password", err.Error())
			return
		}
		user.PasswordHash = string(hash)
	}

	if err := h.Repo.Create(&user); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) UpdateHandler(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload", err.Error())
		return
	}
	user.ID = c.Param("id")
	if err := h.Repo.Update(&user); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update user", err.Error())
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

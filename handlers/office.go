package handlers

import (
	"net/http"

	officeRepo "vango/database/repository/office"
	"vango/models"
	"vango/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OfficeHandler serves office CRUD endpoints.
type OfficeHandler struct {
	Repo officeRepo.OfficeRepository
}

func NewOfficeHandler(repo officeRepo.OfficeRepository) *OfficeHandler {
	return &OfficeHandler{Repo: repo}
}

func (h *OfficeHandler) ListHandler(c *gin.Context) {
	offices, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve offices", err.Error())
		return
	}
	c.JSON(http.StatusOK, offices)
}

func (h *OfficeHandler) GetHandler(c *gin.Context) {
	office, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Office not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, office)
}

func (h *OfficeHandler) CreateHandler(c *gin.Context) {
	var office models.Office
	if err := c.ShouldBindJSON(&office); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid office payload", err.Error())
		return
	}
	if office.ID == "" {
		office.ID = uuid.NewString()
	}
	if err := h.Repo.Create(&office); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create office", err.Error())
		return
	}
	c.JSON(http.StatusCreated, office)
}

func (h *OfficeHandler) UpdateHandler(c *gin.Context) {
	var office models.Office
	if err := c.ShouldBindJSON(&office); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid office payload", err.Error())
		return
	}
	office.ID = c.Param("id")
	if err := h.Repo.Update(&office); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update office", err.Error())
		return
	}
	c.JSON(http.StatusOK, office)
}

func (h *OfficeHandler) DeleteHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete office", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "office deleted"})
}

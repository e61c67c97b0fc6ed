package handlers

import (
	"net/http"

	categoryRepo "vango/database/repository/category"
	"vango/models"
	"vango/services/pricing"
	"vango/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryHandler serves vehicle-category CRUD endpoints. Writes validate the
// rate table so tier gaps can never reach the pricing engine.
type CategoryHandler struct {
	Repo categoryRepo.CategoryRepository
}

func NewCategoryHandler(repo categoryRepo.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{Repo: repo}
}

func (h *CategoryHandler) ListHandler(c *gin.Context) {
	categories, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve categories", err.Error())
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetHandler(c *gin.Context) {
	category, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Category not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateHandler(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid category payload", err.Error())
		return
	}
	if err := pricing.ValidateTiers(category.RateTable); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid rate table", err.Error())
		return
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	if err := h.Repo.Create(&category); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create category", err.Error())
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateHandler(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid category payload", err.Error())
		return
	}
	if err := pricing.ValidateTiers(category.RateTable); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid rate table", err.Error())
		return
	}
	category.ID = c.Param("id")
	if err := h.Repo.Update(&category); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update category", err.Error())
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete category", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

package handlers

import (
	"errors"
	"net/http"

	addonRepo "vango/database/repository/addon"
	"vango/models"
	"vango/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errNoDayTiers     = errors.New("per-day add-on needs at least one day tier")
	errBadPricingType = errors.New("pricing_type must be flat or per_day")
)

// AddOnHandler serves add-on CRUD endpoints.
type AddOnHandler struct {
	Repo addonRepo.AddOnRepository
}

func NewAddOnHandler(repo addonRepo.AddOnRepository) *AddOnHandler {
	return &AddOnHandler{Repo: repo}
}

func (h *AddOnHandler) ListHandler(c *gin.Context) {
	addOns, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve add-ons", err.Error())
		return
	}
	c.JSON(http.StatusOK, addOns)
}

func (h *AddOnHandler) GetHandler(c *gin.Context) {
	addOn, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Add-on not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, addOn)
}

func (h *AddOnHandler) CreateHandler(c *gin.Context) {
	var addOn models.AddOn
	if err := c.ShouldBindJSON(&addOn); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid add-on payload", err.Error())
		return
	}
	if err := validateAddOn(&addOn); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid add-on", err.Error())
		return
	}
	if addOn.ID == "" {
		addOn.ID = uuid.NewString()
	}
	if err := h.Repo.Create(&addOn); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create add-on", err.Error())
		return
	}
	c.JSON(http.StatusCreated, addOn)
}

func (h *AddOnHandler) UpdateHandler(c *gin.Context) {
	var addOn models.AddOn
	if err := c.ShouldBindJSON(&addOn); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid add-on payload", err.Error())
		return
	}
	if err := validateAddOn(&addOn); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid add-on", err.Error())
		return
	}
	addOn.ID = c.Param("id")
	if err := h.Repo.Update(&addOn); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update add-on", err.Error())
		return
	}
	c.JSON(http.StatusOK, addOn)
}

func (h *AddOnHandler) DeleteHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete add-on", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "add-on deleted"})
}

func validateAddOn(addOn *models.AddOn) error {
	switch addOn.PricingType {
	case models.AddOnFlat:
		return nil
	case models.AddOnPerDay:
		if len(addOn.DayTiers) == 0 {
			return errNoDayTiers
		}
		return nil
	default:
		return errBadPricingType
	}
}

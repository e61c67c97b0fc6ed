package handlers

import (
	"net/http"

	vehicleRepo "vango/database/repository/vehicle"
	"vango/models"
	"vango/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VehicleHandler serves fleet CRUD endpoints.
type VehicleHandler struct {
	Repo vehicleRepo.VehicleRepository
}

func NewVehicleHandler(repo vehicleRepo.VehicleRepository) *VehicleHandler {
	return &VehicleHandler{Repo: repo}
}

func (h *VehicleHandler) ListHandler(c *gin.Context) {
	vehicles, err := h.Repo.GetAll(c.Query("officeId"), c.Query("categoryId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve vehicles", err.Error())
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) GetHandler(c *gin.Context) {
	vehicle, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Vehicle not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) CreateHandler(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid vehicle payload", err.Error())
		return
	}
	if vehicle.ID == "" {
		vehicle.ID = uuid.NewString()
	}
	if vehicle.Status == "" {
		vehicle.Status = models.VehicleActive
	}
	if err := h.Repo.Create(&vehicle); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create vehicle", err.Error())
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (h *VehicleHandler) UpdateHandler(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid vehicle payload", err.Error())
		return
	}
	vehicle.ID = c.Param("id")
	if err := h.Repo.Update(&vehicle); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update vehicle", err.Error())
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) DeleteHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete vehicle", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	addonRepo "vango/database/repository/addon"
	categoryRepo "vango/database/repository/category"
	reservationRepo "vango/database/repository/reservation"
	"vango/models"
	"vango/services/pricing"
	"vango/services/reservation"
	"vango/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler serves reservation endpoints. Creation goes through the
// reservation service so the direct API path gets the same slot locking and
// conflict re-check as the conversational agent.
type ReservationHandler struct {
	Service    reservation.Service
	Categories categoryRepo.CategoryRepository
	AddOns     addonRepo.AddOnRepository
}

func NewReservationHandler(svc reservation.Service, categories categoryRepo.CategoryRepository, addOns addonRepo.AddOnRepository) *ReservationHandler {
	return &ReservationHandler{Service: svc, Categories: categories, AddOns: addOns}
}

// CreateReservationRequest is the direct (non-agent) booking payload. The
// price is always computed server side.
type CreateReservationRequest struct {
	OfficeID   string             `json:"office_id" binding:"required"`
	CategoryID string             `json:"category_id" binding:"required"`
	UserID     string             `json:"user_id" binding:"required"`
	StartDate  time.Time          `json:"start_date" binding:"required"`
	EndDate    time.Time          `json:"end_date" binding:"required"`
	DriverAge  int                `json:"driver_age" binding:"required"`
	AddOns     []models.AddOnLine `json:"addons,omitempty"`
	Message    string             `json:"message,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ReservationHandler) ListHandler(c *gin.Context) {
	filter := reservationRepo.ReservationFilter{
		OfficeID:   c.Query("officeId"),
		CategoryID: c.Query("categoryId"),
		UserID:     c.Query("userId"),
		Status:     c.Query("status"),
	}
	reservations, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) GetHandler(c *gin.Context) {
	res, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Reservation not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}

// AvailabilityHandler answers whether a slot is free, listing any conflicting
// windows. Touching boundaries do not conflict.
func (h *ReservationHandler) AvailabilityHandler(c *gin.Context) {
	officeID := c.Query("officeId")
	categoryID := c.Query("categoryId")
	start, errStart := time.Parse(time.RFC3339, c.Query("start"))
	end, errEnd := time.Parse(time.RFC3339, c.Query("end"))
	if officeID == "" || categoryID == "" || errStart != nil || errEnd != nil {
		utils.JSONError(c, http.StatusBadRequest, "officeId, categoryId, start and end (RFC3339) are required", "")
		return
	}

	conflicts, err := h.Service.CheckAvailability(c.Request.Context(), officeID, categoryID, start, end)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Availability check failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available": len(conflicts) == 0,
		"conflicts": conflicts,
	})
}

func (h *ReservationHandler) CreateHandler(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reservation payload", err.Error())
		return
	}

	category, err := h.Categories.GetByID(req.CategoryID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unknown category", err.Error())
		return
	}
	if category.MinDriverAge > 0 && req.DriverAge < category.MinDriverAge {
		utils.JSONError(c, http.StatusBadRequest, "Driver below minimum age for this category", "")
		return
	}

	billable, total, err := pricing.Quote(req.StartDate, req.EndDate, category.RateTable)
	if err != nil {
		var rangeErr *pricing.RangeError
		if errors.As(err, &rangeErr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid rental window", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Pricing failed", err.Error())
		return
	}

	var addOnLines []models.ReservationAddOn
	if len(req.AddOns) > 0 {
		catalog, err := h.AddOns.GetAll()
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load add-ons", err.Error())
			return
		}
		addOnTotal, lines, err := pricing.AddOnsTotal(catalog, req.AddOns, billable.Days)
		if err != nil {
			var unknown *pricing.UnknownAddOnError
			if errors.As(err, &unknown) {
				utils.JSONError(c, http.StatusBadRequest, "Unknown add-on requested", err.Error())
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Add-on pricing failed", err.Error())
			return
		}
		total += addOnTotal
		addOnLines = lines
	}

	res := &models.Reservation{
		OfficeID:   req.OfficeID,
		CategoryID: req.CategoryID,
		UserID:     req.UserID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		DriverAge:  req.DriverAge,
		TotalPrice: total,
		AddOns:     addOnLines,
		Message:    req.Message,
	}
	if err := h.Service.Create(c.Request.Context(), res); err != nil {
		var conflict *reservation.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusConflict, gin.H{
				"error":     "The requested window is no longer available",
				"conflicts": conflict.Windows,
			})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create reservation", err.Error())
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *ReservationHandler) UpdateStatusHandler(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status payload", err.Error())
		return
	}

	if err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		var transition *reservation.TransitionError
		if errors.As(err, &transition) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid status transition", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update reservation status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
}

func (h *ReservationHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete reservation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation deleted"})
}

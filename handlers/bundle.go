package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration stays in one place.
type HandlerBundle struct {
	// Office endpoints
	ListOfficesHandler  gin.HandlerFunc
	GetOfficeHandler    gin.HandlerFunc
	CreateOfficeHandler gin.HandlerFunc
	UpdateOfficeHandler gin.HandlerFunc
	DeleteOfficeHandler gin.HandlerFunc

	// Category endpoints
	ListCategoriesHandler gin.HandlerFunc
	GetCategoryHandler    gin.HandlerFunc
	CreateCategoryHandler gin.HandlerFunc
	UpdateCategoryHandler gin.HandlerFunc
	DeleteCategoryHandler gin.HandlerFunc

	// Vehicle endpoints
	ListVehiclesHandler  gin.HandlerFunc
	GetVehicleHandler    gin.HandlerFunc
	CreateVehicleHandler gin.HandlerFunc
	UpdateVehicleHandler gin.HandlerFunc
	DeleteVehicleHandler gin.HandlerFunc

	// Add-on endpoints
	ListAddOnsHandler  gin.HandlerFunc
	GetAddOnHandler    gin.HandlerFunc
	CreateAddOnHandler gin.HandlerFunc
	UpdateAddOnHandler gin.HandlerFunc
	DeleteAddOnHandler gin.HandlerFunc

	// Reservation endpoints
	ListReservationsHandler        gin.HandlerFunc
	GetReservationHandler          gin.HandlerFunc
	AvailabilityHandler            gin.HandlerFunc
	CreateReservationHandler       gin.HandlerFunc
	UpdateReservationStatusHandler gin.HandlerFunc
	DeleteReservationHandler       gin.HandlerFunc

	// User and auth endpoints
	ListUsersHandler  gin.HandlerFunc
	GetUserHandler    gin.HandlerFunc
	CreateUserHandler gin.HandlerFunc
	UpdateUserHandler gin.HandlerFunc
	DeleteUserHandler gin.HandlerFunc
	AdminLoginHandler gin.HandlerFunc

	// Agent endpoints
	AgentTurnHandler gin.HandlerFunc
	STTHandler       gin.HandlerFunc

	// Blog endpoints
	ListPostsHandler    gin.HandlerFunc
	GetPostHandler      gin.HandlerFunc
	CreatePostHandler   gin.HandlerFunc
	UpdatePostHandler   gin.HandlerFunc
	DeletePostHandler   gin.HandlerFunc
	GeneratePostHandler gin.HandlerFunc

	// Analyst endpoint
	AnalystAskHandler gin.HandlerFunc
}

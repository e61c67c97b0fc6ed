package routes

import (
	"net/http"
	"time"

	"vango/handlers"
	"vango/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterOfficeRoutes registers rental-office endpoints. Reads are public,
// writes are admin only.
func RegisterOfficeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/offices")
	{
		api.GET("", hb.ListOfficesHandler)
		api.GET("/:id", hb.GetOfficeHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", hb.CreateOfficeHandler)
		admin.PUT("/:id", hb.UpdateOfficeHandler)
		admin.DELETE("/:id", hb.DeleteOfficeHandler)
	}
}

// RegisterCategoryRoutes registers vehicle-category endpoints.
func RegisterCategoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/categories")
	{
		api.GET("", hb.ListCategoriesHandler)
		api.GET("/:id", hb.GetCategoryHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", hb.CreateCategoryHandler)
		admin.PUT("/:id", hb.UpdateCategoryHandler)
		admin.DELETE("/:id", hb.DeleteCategoryHandler)
	}
}

// RegisterVehicleRoutes registers fleet endpoints.
func RegisterVehicleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vehicles")
	{
		api.GET("", hb.ListVehiclesHandler)
		api.GET("/:id", hb.GetVehicleHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", hb.CreateVehicleHandler)
		admin.PUT("/:id", hb.UpdateVehicleHandler)
		admin.DELETE("/:id", hb.DeleteVehicleHandler)
	}
}

// RegisterAddOnRoutes registers add-on endpoints.
func RegisterAddOnRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/addons")
	{
		api.GET("", hb.ListAddOnsHandler)
		api.GET("/:id", hb.GetAddOnHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", hb.CreateAddOnHandler)
		admin.PUT("/:id", hb.UpdateAddOnHandler)
		admin.DELETE("/:id", hb.DeleteAddOnHandler)
	}
}

// RegisterReservationRoutes registers reservation endpoints. Availability and
// creation are public (the booking flow runs unauthenticated); lifecycle
// management is admin only.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.GET("/availability", hb.AvailabilityHandler)
		api.POST("", hb.CreateReservationHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.GET("", hb.ListReservationsHandler)
		admin.GET("/:id", hb.GetReservationHandler)
		admin.PATCH("/:id/status", hb.UpdateReservationStatusHandler)
		admin.DELETE("/:id", hb.DeleteReservationHandler)
	}
}

// RegisterUserRoutes registers user management and admin login endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/auth/login", hb.AdminLoginHandler)

	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("", hb.ListUsersHandler)
		api.GET("/:id", hb.GetUserHandler)
		api.POST("", hb.CreateUserHandler)
		api.PUT("/:id", hb.UpdateUserHandler)
		api.DELETE("/:id", hb.DeleteUserHandler)
	}
}

// RegisterAgentRoutes registers the conversational booking agent endpoints.
func RegisterAgentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/agent")
	{
		api.POST("/turn", hb.AgentTurnHandler)
		api.POST("/stt", hb.STTHandler)
	}
}

// RegisterBlogRoutes registers blog endpoints. Anonymous readers only see
// published posts; draft generation and edits are admin only.
func RegisterBlogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/blog")
	{
		api.GET("", hb.ListPostsHandler)
		api.GET("/:slug", hb.GetPostHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", hb.CreatePostHandler)
		admin.POST("/generate", hb.GeneratePostHandler)
		admin.PUT("/id/:id", hb.UpdatePostHandler)
		admin.DELETE("/id/:id", hb.DeletePostHandler)
	}
}

// RegisterAnalystRoutes registers the admin analyst chatbot endpoint.
func RegisterAnalystRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/analyst")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("/ask", hb.AnalystAskHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "vango is up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterOfficeRoutes(r, hb)
	RegisterCategoryRoutes(r, hb)
	RegisterVehicleRoutes(r, hb)
	RegisterAddOnRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAgentRoutes(r, hb)
	RegisterBlogRoutes(r, hb)
	RegisterAnalystRoutes(r, hb)
}

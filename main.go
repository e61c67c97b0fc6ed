package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vango/config"
	"vango/database"
	addonRepoPkg "vango/database/repository/addon"
	blogRepoPkg "vango/database/repository/blog"
	categoryRepoPkg "vango/database/repository/category"
	officeRepoPkg "vango/database/repository/office"
	reservationRepoPkg "vango/database/repository/reservation"
	userRepoPkg "vango/database/repository/user"
	vehicleRepoPkg "vango/database/repository/vehicle"
	"vango/handlers"
	"vango/middleware"
	"vango/routes"
	"vango/services/agent"
	"vango/services/content"
	ai "vango/services/intelligence"
	"vango/services/notification"
	"vango/services/reservation"
	"vango/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitLockCache()

	ctx := context.Background()

	geminiClient, err := ai.NewGeminiClient(ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
	}
	ttsClient, err := ai.NewTTSClient(ctx,
		config.AppConfig.GoogleServiceAccountFile,
		config.AppConfig.TTSLanguageCode,
		config.AppConfig.TTSVoiceName,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize text-to-speech client: %v", err)
	}
	defer ttsClient.Close()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	officeRepo := officeRepoPkg.NewMongoOfficeRepo()
	categoryRepo := categoryRepoPkg.NewCachedCategoryRepo(
		categoryRepoPkg.NewMongoCategoryRepo(), utils.GetCacheClient())
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo()
	addonRepo := addonRepoPkg.NewMongoAddOnRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	blogRepo := blogRepoPkg.NewMongoBlogRepo()

	// services.
	notifier := &notification.LogNotificationService{}
	reservationService := &reservation.DefaultReservationService{
		Repo:     reservationRepo,
		Locks:    reservation.NewRedisSlotLocker(utils.GetLockClient()),
		Notifier: notifier,
	}
	agentService := &agent.DefaultAgentService{
		LLM:          ai.NewAgentBrain(geminiClient),
		Speech:       ttsClient,
		Offices:      officeRepo,
		Categories:   categoryRepo,
		Users:        userRepo,
		Reservations: reservationService,
	}
	generatorService := &content.GeneratorService{
		Gemini:     geminiClient,
		Blog:       blogRepo,
		Categories: categoryRepo,
	}
	analystService := &content.AnalystService{
		Gemini:       geminiClient,
		Reservations: reservationRepo,
	}

	// handlers.
	officeHandler := handlers.NewOfficeHandler(officeRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	vehicleHandler := handlers.NewVehicleHandler(vehicleRepo)
	addonHandler := handlers.NewAddOnHandler(addonRepo)
	reservationHandler := handlers.NewReservationHandler(reservationService, categoryRepo, addonRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	authHandler := handlers.NewAuthHandler(userRepo)
	agentHandler := handlers.NewAgentHandler(agentService)
	blogHandler := handlers.NewBlogHandler(blogRepo, generatorService)
	analystHandler := handlers.NewAnalystHandler(analystService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Office endpoints.
		ListOfficesHandler:  officeHandler.ListHandler,
		GetOfficeHandler:    officeHandler.GetHandler,
		CreateOfficeHandler: officeHandler.CreateHandler,
		UpdateOfficeHandler: officeHandler.UpdateHandler,
		DeleteOfficeHandler: officeHandler.DeleteHandler,

		// Category endpoints.
		ListCategoriesHandler: categoryHandler.ListHandler,
		GetCategoryHandler:    categoryHandler.GetHandler,
		CreateCategoryHandler: categoryHandler.CreateHandler,
		UpdateCategoryHandler: categoryHandler.UpdateHandler,
		DeleteCategoryHandler: categoryHandler.DeleteHandler,

		// Vehicle endpoints.
		ListVehiclesHandler:  vehicleHandler.ListHandler,
		GetVehicleHandler:    vehicleHandler.GetHandler,
		CreateVehicleHandler: vehicleHandler.CreateHandler,
		UpdateVehicleHandler: vehicleHandler.UpdateHandler,
		DeleteVehicleHandler: vehicleHandler.DeleteHandler,

		// Add-on endpoints.
		ListAddOnsHandler:  addonHandler.ListHandler,
		GetAddOnHandler:    addonHandler.GetHandler,
		CreateAddOnHandler: addonHandler.CreateHandler,
		UpdateAddOnHandler: addonHandler.UpdateHandler,
		DeleteAddOnHandler: addonHandler.DeleteHandler,

		// Reservation endpoints.
		ListReservationsHandler:        reservationHandler.ListHandler,
		GetReservationHandler:          reservationHandler.GetHandler,
		AvailabilityHandler:            reservationHandler.AvailabilityHandler,
		CreateReservationHandler:       reservationHandler.CreateHandler,
		UpdateReservationStatusHandler: reservationHandler.UpdateStatusHandler,
		DeleteReservationHandler:       reservationHandler.DeleteHandler,

		// User and auth endpoints.
		ListUsersHandler:  userHandler.ListHandler,
		GetUserHandler:    userHandler.GetHandler,
		CreateUserHandler: userHandler.CreateHandler,
		UpdateUserHandler: userHandler.UpdateHandler,
		DeleteUserHandler: userHandler.DeleteHandler,
		AdminLoginHandler: authHandler.LoginHandler,

		// Agent endpoints.
		AgentTurnHandler: agentHandler.TurnHandler,
		STTHandler:       handlers.STTHandler,

		// Blog endpoints.
		ListPostsHandler:    blogHandler.ListHandler,
		GetPostHandler:      blogHandler.GetBySlugHandler,
		CreatePostHandler:   blogHandler.CreateHandler,
		UpdatePostHandler:   blogHandler.UpdateHandler,
		DeletePostHandler:   blogHandler.DeleteHandler,
		GeneratePostHandler: blogHandler.GenerateHandler,

		// Analyst endpoint.
		AnalystAskHandler: analystHandler.AskHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

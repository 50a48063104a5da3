package routes

import (
	"example.com/fleetdesk/api/handlers"
	"example.com/fleetdesk/api/middleware"
	"example.com/fleetdesk/config"
	"example.com/fleetdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRoutes sets up all the routes for the server
func SetupRoutes(r *gin.Engine, cfg *config.Config, svc service.Service, log *logrus.Logger) {
	// Health check
	r.GET("/health", handlers.HealthCheck)

	// API routes require a provider-issued ID token
	api := r.Group("/api/v1")
	api.Use(middleware.IdentityAuth(cfg.Identity.Issuer, log))

	// Identity routes
	authHandler := handlers.NewAuthHandler(cfg.Identity)
	auth := api.Group("/auth")
	{
		auth.GET("/me", authHandler.Me)
		auth.POST("/logout", authHandler.Logout)
	}

	// Vehicle routes
	vehicleHandler := handlers.NewVehicleHandler(svc, log)
	vehicles := api.Group("/vehicles")
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
		vehicles.POST("/:id/images", vehicleHandler.UploadImage)
		vehicles.GET("/brands", vehicleHandler.ListBrands)
		vehicles.GET("/brands/:id/models", vehicleHandler.ListModels)
	}

	// Client routes
	clientHandler := handlers.NewClientHandler(svc, log)
	clients := api.Group("/clients")
	{
		clients.GET("", clientHandler.ListClients)
		clients.POST("", clientHandler.CreateClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	// Conductor routes
	conductorHandler := handlers.NewConductorHandler(svc, log)
	conductores := api.Group("/conductores")
	{
		conductores.GET("", conductorHandler.ListConductores)
		conductores.POST("", conductorHandler.CreateConductor)
		conductores.PUT("/:id", conductorHandler.UpdateConductor)
		conductores.DELETE("/:id", conductorHandler.DeleteConductor)
	}

	// Maintenance routes
	maintenanceHandler := handlers.NewMaintenanceHandler(svc, log)
	maintenances := api.Group("/maintenances")
	{
		maintenances.GET("", maintenanceHandler.ListMaintenances)
		maintenances.POST("", maintenanceHandler.CreateMaintenance)
		maintenances.PUT("/:id", maintenanceHandler.UpdateMaintenance)
		maintenances.DELETE("/:id", maintenanceHandler.DeleteMaintenance)
	}

	// Lookup, dashboard and report routes
	catalogHandler := handlers.NewCatalogHandler(svc, log)
	api.GET("/catalogs/:category", catalogHandler.GetCatalog)

	dashboardHandler := handlers.NewDashboardHandler(svc, log)
	api.GET("/dashboard", dashboardHandler.GetSummary)

	reportHandler := handlers.NewReportHandler(svc, log)
	api.GET("/reports", reportHandler.ListReports)

	// Delivery wizard routes
	deliveryHandler := handlers.NewDeliveryHandler(svc, log)
	deliveries := api.Group("/delivery/sessions")
	{
		deliveries.POST("", deliveryHandler.StartSession)
		deliveries.GET("/:id", deliveryHandler.GetSession)
		deliveries.POST("/:id/steps/general", deliveryHandler.SubmitGeneral)
		deliveries.POST("/:id/steps/exterior", deliveryHandler.SubmitExterior)
		deliveries.POST("/:id/steps/tires", deliveryHandler.SubmitTires)
		deliveries.POST("/:id/steps/fluids", deliveryHandler.SubmitFluids)
		deliveries.POST("/:id/steps/equipment", deliveryHandler.SubmitEquipment)
		deliveries.POST("/:id/back", deliveryHandler.Back)
		deliveries.POST("/:id/finalize", deliveryHandler.Finalize)
		deliveries.POST("/:id/reset", deliveryHandler.Reset)
	}
}

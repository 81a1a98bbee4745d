package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/config"
	"github.com/polotecnico/gestionale-api/controllers"
	"github.com/polotecnico/gestionale-api/middleware"
	"github.com/polotecnico/gestionale-api/models"
	"github.com/polotecnico/gestionale-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting Gestionale API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize the invoice archive when a bucket is configured
	if cfg.ArchiveEnabled() {
		if _, err := services.InitArchiveService(); err != nil {
			log.Fatalf("Failed to initialize invoice archive: %v", err)
		}
		log.Printf("Invoice archive enabled (bucket: %s)", cfg.AWSS3Bucket)
	}

	router := setupRouter()

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin router with every API route mounted
func setupRouter() *gin.Engine {
	router := gin.Default()

	// The single-page frontend is served from its own origin
	router.Use(cors.Default())

	cfg := config.GetConfig()

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Authentication is optional: the tool runs single-user and open
	// unless an Auth0 tenant is configured
	if cfg != nil && cfg.AuthEnabled() {
		v1.Use(middleware.EnsureValidToken(cfg))
	}

	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus)

		// View bundles for the single-page frontend
		v1.GET("/views/:view", controllers.GetView)

		// Clients
		v1.POST("/clients", controllers.CreateClient)
		v1.GET("/clients", controllers.ListClients)
		v1.GET("/clients/:id", controllers.GetClient)
		v1.GET("/clients/:id/interventions", controllers.GetClientHistory)
		v1.DELETE("/clients/:id", controllers.DeleteClient)

		// Interventions
		v1.POST("/interventions", controllers.CreateIntervention)
		v1.GET("/interventions", controllers.ListInterventions)
		v1.DELETE("/interventions/:id", controllers.DeleteIntervention)

		// Materials
		v1.POST("/materials", controllers.CreateMaterial)
		v1.GET("/materials", controllers.ListMaterials)
		v1.DELETE("/materials/:id", controllers.DeleteMaterial)

		// Labels
		v1.POST("/labels", controllers.CreateLabel)
		v1.GET("/labels", controllers.ListLabels)
		v1.DELETE("/labels/:id", controllers.DeleteLabel)

		// Planned interventions
		v1.POST("/planned-interventions", controllers.CreatePlannedIntervention)
		v1.GET("/planned-interventions", controllers.ListPlannedInterventions)
		v1.POST("/planned-interventions/:id/complete", controllers.CompletePlannedIntervention)
		v1.DELETE("/planned-interventions/:id", controllers.DeletePlannedIntervention)

		// Systems and recurring maintenances
		v1.POST("/systems", controllers.CreateSystem)
		v1.GET("/systems", controllers.ListSystems)
		v1.GET("/systems/:id", controllers.GetSystemDetail)
		v1.DELETE("/systems/:id", controllers.DeleteSystem)
		v1.POST("/recurring-maintenances", controllers.CreateRecurringMaintenance)
		v1.GET("/recurring-maintenances", controllers.ListRecurringMaintenances)

		// Work orders
		v1.POST("/work-orders", controllers.CreateWorkOrder)
		v1.GET("/work-orders", controllers.ListWorkOrders)
		v1.PUT("/work-orders/:id/status", controllers.UpdateWorkOrderStatus)
		v1.DELETE("/work-orders/:id", controllers.DeleteWorkOrder)

		// Reports
		v1.GET("/reports/dashboard", controllers.GetDashboard)
		v1.GET("/reports/monthly", controllers.GetMonthlyReport)
		v1.GET("/reports/financial", controllers.GetFinancialReport)

		// Invoices
		v1.POST("/invoices", controllers.GenerateInvoice)
		v1.POST("/invoices/preview", controllers.PreviewInvoice)
		v1.GET("/invoices/archive/url", controllers.GetArchivedInvoiceURL)

		// Calendar
		v1.GET("/calendar/events", controllers.ListCalendarEvents)
		v1.POST("/calendar/events", controllers.CreateCalendarEvent)

		// Settings
		v1.GET("/settings/theme", controllers.GetTheme)
		v1.PUT("/settings/theme", controllers.UpdateTheme)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Gestionale API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Get list of tables; works for both sqlite and postgres
	tables, err := db.Migrator().GetTables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}

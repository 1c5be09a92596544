package router

import (
	"homeveda_backend/internal/handlers"
	"homeveda_backend/internal/repositories"
	"homeveda_backend/internal/services"
	"homeveda_backend/internal/storage"
	"homeveda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *mongo.Database, store storage.ObjectStorage) {
	// Initialize Repositories
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	architectRepo := repositories.NewArchitectRepository(db)
	quotationRepo := repositories.NewQuotationRepository(db)
	designRepo := repositories.NewDesignRepository(db)
	inspectionRepo := repositories.NewInspectionRepository(db)
	materialRepo := repositories.NewMaterialRepository(db)

	// Initialize Services
	resetBaseURL := utils.Getenv("RESET_PASSWORD_URL", "http://localhost:3000/reset-password")

	authService := services.NewAuthService(userRepo, services.NewLogMailer(), resetBaseURL)
	projectService := services.NewProjectService(projectRepo)
	catalogService := services.NewCatalogService(catalogRepo, store)
	leadService := services.NewLeadService(leadRepo, architectRepo)
	architectService := services.NewArchitectService(architectRepo)
	quotationService := services.NewQuotationService(quotationRepo, projectRepo)
	designService := services.NewDesignService(designRepo, projectRepo, store)
	inspectionService := services.NewInspectionService(inspectionRepo, projectRepo, store)
	materialService := services.NewMaterialService(materialRepo, projectRepo, store)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	leadHandler := handlers.NewLeadHandler(leadService)
	architectHandler := handlers.NewArchitectHandler(architectService)
	quotationHandler := handlers.NewQuotationHandler(quotationService)
	designHandler := handlers.NewDesignHandler(designService)
	inspectionHandler := handlers.NewInspectionHandler(inspectionService)
	materialHandler := handlers.NewMaterialHandler(materialService)

	SetupUserRoutes(engine, authHandler)
	SetupProjectRoutes(engine, projectHandler)
	SetupCatalogRoutes(engine, catalogHandler)
	SetupLeadRoutes(engine, leadHandler)
	SetupArchitectRoutes(engine, architectHandler)
	SetupQuotationRoutes(engine, quotationHandler)
	SetupDesignRoutes(engine, designHandler)
	SetupInspectionRoutes(engine, inspectionHandler)
	SetupMaterialRoutes(engine, materialHandler)
}

package router

import (
	"homeveda_backend/internal/handlers"
	"homeveda_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up account and authentication routes.
func SetupUserRoutes(engine *gin.Engine, authHandler *handlers.AuthHandler) {
	userRoutes := engine.Group("/user")
	{
		userRoutes.POST("/register", authHandler.RegisterUser)
		userRoutes.POST("/login", authHandler.Login)
		userRoutes.POST("/forgot-password", authHandler.ForgotPassword)
		userRoutes.POST("/reset-password", authHandler.ResetPassword)

		authed := userRoutes.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/details", authHandler.GetUserDetails)
			authed.PUT("/details", authHandler.UpdateUserDetails)
			authed.POST("/change-password", authHandler.ChangePassword)
			authed.DELETE("", authHandler.DeleteUser)

			superAdmin := authed.Group("")
			superAdmin.Use(middleware.SuperAdminMiddleware())
			{
				superAdmin.POST("/register-admin", authHandler.RegisterAdmin)
				superAdmin.GET("/all", authHandler.GetAllUsers)
			}
		}
	}
}

// SetupProjectRoutes sets up the project routes.
func SetupProjectRoutes(engine *gin.Engine, projectHandler *handlers.ProjectHandler) {
	projectRoutes := engine.Group("/project")
	projectRoutes.Use(middleware.AuthMiddleware())
	{
		projectRoutes.POST("", projectHandler.CreateProject)
		projectRoutes.GET("/:id", projectHandler.GetProjectByID)
		projectRoutes.GET("/user/:userEmail", projectHandler.GetProjectsByUser)
		projectRoutes.PUT("/:id", projectHandler.UpdateProject)
		projectRoutes.DELETE("/:id", projectHandler.DeleteProject)
	}
}

// SetupCatalogRoutes sets up the catalog routes. Reads are open to any
// authenticated user; writes are admin only.
func SetupCatalogRoutes(engine *gin.Engine, catalogHandler *handlers.CatalogHandler) {
	catalogRoutes := engine.Group("/catalog")
	catalogRoutes.Use(middleware.AuthMiddleware())
	{
		catalogRoutes.GET("", catalogHandler.GetCatalogItems)
		catalogRoutes.GET("/departments", catalogHandler.GetDepartments)
		catalogRoutes.GET("/grouped", catalogHandler.GetCatalogGrouped)
		catalogRoutes.GET("/department/:department", catalogHandler.GetCatalogItems)
		catalogRoutes.GET("/department/:department/workType/:workType", catalogHandler.GetCatalogItems)
		catalogRoutes.GET("/category/:category", catalogHandler.GetCatalogItems)
		catalogRoutes.GET("/category/:category/type/:type", catalogHandler.GetCatalogItems)
		catalogRoutes.GET("/category/:category/workType/:workType", catalogHandler.GetCatalogItems)
		catalogRoutes.GET("/:id", catalogHandler.GetCatalogItemByID)

		adminRoutes := catalogRoutes.Group("")
		adminRoutes.Use(middleware.AdminMiddleware())
		{
			adminRoutes.POST("", catalogHandler.CreateCatalogItem)
			adminRoutes.PUT("/:id", catalogHandler.UpdateCatalogItem)
			adminRoutes.DELETE("/:id", catalogHandler.DeleteCatalogItem)
		}
	}
}

// SetupLeadRoutes sets up the lead routes. Admin only; list visibility is
// further narrowed by role inside the service.
func SetupLeadRoutes(engine *gin.Engine, leadHandler *handlers.LeadHandler) {
	leadRoutes := engine.Group("/initiallead")
	leadRoutes.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		leadRoutes.POST("", leadHandler.CreateLead)
		leadRoutes.GET("", leadHandler.GetLeads)
		leadRoutes.GET("/:id", leadHandler.GetLeadByID)
		leadRoutes.PUT("/:id", leadHandler.UpdateLead)
		leadRoutes.DELETE("/:id", leadHandler.DeleteLead)
	}
}

// SetupArchitectRoutes sets up the architect contact routes. Admin only.
func SetupArchitectRoutes(engine *gin.Engine, architectHandler *handlers.ArchitectHandler) {
	architectRoutes := engine.Group("/architects")
	architectRoutes.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		architectRoutes.POST("", architectHandler.CreateArchitect)
		architectRoutes.GET("", architectHandler.GetAllArchitects)
		architectRoutes.GET("/:id", architectHandler.GetArchitectByID)
		architectRoutes.PUT("/:id", architectHandler.UpdateArchitect)
		architectRoutes.DELETE("/:id", architectHandler.DeleteArchitect)
	}
}

// SetupQuotationRoutes sets up the quotation routes. Admin only.
func SetupQuotationRoutes(engine *gin.Engine, quotationHandler *handlers.QuotationHandler) {
	quotationRoutes := engine.Group("/quotation")
	quotationRoutes.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		quotationRoutes.POST("", quotationHandler.CreateQuotation)
		quotationRoutes.GET("", quotationHandler.GetQuotations)
		quotationRoutes.GET("/:id", quotationHandler.GetQuotationByID)
		quotationRoutes.GET("/project/:projectId", quotationHandler.GetQuotationsByProject)
		quotationRoutes.PUT("/:id/items", quotationHandler.ReplaceQuotationItems)
		quotationRoutes.PATCH("/:id/totals", quotationHandler.UpdateQuotationTotals)
		quotationRoutes.DELETE("/:id", quotationHandler.DeleteQuotation)
	}
}

// SetupDesignRoutes sets up the design routes. Admin only.
func SetupDesignRoutes(engine *gin.Engine, designHandler *handlers.DesignHandler) {
	designRoutes := engine.Group("/designs")
	designRoutes.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		designRoutes.POST("", designHandler.CreateDesign)
		designRoutes.GET("/:id", designHandler.GetDesignByID)
		designRoutes.GET("/project/:projectId", designHandler.GetDesignsByProject)
		designRoutes.POST("/:id/items", designHandler.AddDesignItems)
		designRoutes.PUT("/:id/items/:itemId", designHandler.UpdateDesignItem)
		designRoutes.DELETE("/:id/items/:itemId", designHandler.DeleteDesignItem)
		designRoutes.DELETE("/:id", designHandler.DeleteDesign)
	}
}

// SetupInspectionRoutes sets up the site inspection routes. Admin only.
func SetupInspectionRoutes(engine *gin.Engine, inspectionHandler *handlers.InspectionHandler) {
	inspectionRoutes := engine.Group("/inspections")
	inspectionRoutes.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		inspectionRoutes.POST("", inspectionHandler.CreateInspection)
		inspectionRoutes.GET("/:id", inspectionHandler.GetInspectionByID)
		inspectionRoutes.GET("/project/:projectId", inspectionHandler.GetInspectionsByProject)
		inspectionRoutes.PUT("/:id", inspectionHandler.UpdateInspection)
		inspectionRoutes.DELETE("/:id/videos/:index", inspectionHandler.DeleteOtherVideo)
		inspectionRoutes.DELETE("/:id", inspectionHandler.DeleteInspection)
	}
}

// SetupMaterialRoutes sets up the material selection routes. Admin only.
func SetupMaterialRoutes(engine *gin.Engine, materialHandler *handlers.MaterialHandler) {
	materialRoutes := engine.Group("/materials")
	materialRoutes.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		materialRoutes.POST("", materialHandler.AddMaterials)
		materialRoutes.GET("/project/:projectId", materialHandler.GetMaterialsByProject)
		materialRoutes.PUT("/project/:projectId/items/:itemId", materialHandler.UpdateMaterialItem)
		materialRoutes.DELETE("/project/:projectId/items/:itemId", materialHandler.RemoveMaterialItem)
		materialRoutes.DELETE("/project/:projectId", materialHandler.DeleteMaterials)
	}
}

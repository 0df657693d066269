package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/shop-api/auth"
	"github.com/junaidrashid-git/shop-api/config"
	productcontroller "github.com/junaidrashid-git/shop-api/controllers/product"
	"github.com/junaidrashid-git/shop-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints.
func SetupAdminRoutes(r *gin.Engine, svc *Services, cfg config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(cfg.AdminAPIKey, cfg.JWTSecret))
	{
		// ─────────── Bearer tokens ───────────
		adminGroup.POST("/token", auth.IssueAdminTokenHandler(cfg.JWTSecret))

		// ─────────── Catalog spreadsheets ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("/import-excel", productcontroller.ImportItemsFromExcel(svc.Items))
			productAdmin.GET("/export-excel", productcontroller.ExportItemsToExcel(svc.Items))
		}
	}
}

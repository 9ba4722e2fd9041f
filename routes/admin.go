package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/Godswillconcept/expo-ecommerce/controllers/product"
	userControllers "github.com/Godswillconcept/expo-ecommerce/controllers/user"
	"github.com/Godswillconcept/expo-ecommerce/middleware"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Requires a bearer
// token signed with the configured JWT secret.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.ValidateToken(deps.Cfg.JWTSecret))
	{
		// ─────────── User Directory (read-only) ───────────
		userAdmin := adminGroup.Group("/users")
		{
			userAdmin.GET("", userControllers.GetAllUsers(deps.Users))
			userAdmin.GET("/export-excel", userControllers.ExportUsersToExcel(deps.Users))
			userAdmin.GET("/:clerk_id", userControllers.GetUserByClerkID(deps.Users))
			userAdmin.GET("/:clerk_id/wishlist", userControllers.GetUserWishlist(deps.Users))
			userAdmin.GET("/:clerk_id/addresses", userControllers.GetUserAddresses(deps.Users))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(deps.DB))
			productAdmin.GET("/:id", productcontroller.GetProductByID(deps.DB))
			productAdmin.POST("", productcontroller.CreateProduct(deps.DB, deps.Uploads))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.DB, deps.Uploads))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.DB))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(deps.DB))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.DB))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productcontroller.GetAllCategories(deps.DB))
			categoryAdmin.POST("", productcontroller.CreateCategory(deps.DB, deps.Uploads))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(deps.DB, deps.Uploads))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(deps.DB))
		}

		// ─────────── Live Sync Feed ───────────
		adminGroup.GET("/sync-feed", deps.Feed.Handler())
	}
}

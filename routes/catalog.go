package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/junaidrashid-git/shop-api/controllers/product"
)

func SetupCatalogRoutes(api *gin.RouterGroup, svc *Services) {
	categories := api.Group("/categories")
	{
		categories.GET("/all", productcontroller.GetAllCategories(svc.Categories))
		categories.POST("/add", productcontroller.CreateCategory(svc.Categories))
		categories.GET("/id/:id", productcontroller.GetCategoryByID(svc.Categories))
		categories.GET("/name/:name", productcontroller.GetCategoryByName(svc.Categories))
		categories.PUT("/:id/update", productcontroller.UpdateCategory(svc.Categories))
		categories.DELETE("/delete_by_id", productcontroller.DeleteCategory(svc.Categories))
	}

	products := api.Group("/products")
	{
		products.POST("/add", productcontroller.AddItem(svc.Items))
		products.GET("/all", productcontroller.GetAllItems(svc.Items))
		products.GET("/by_id", productcontroller.GetItemByID(svc.Items))
		products.PUT("/update/:itemId", productcontroller.UpdateItem(svc.Items))
		products.DELETE("/delete", productcontroller.DeleteItem(svc.Items))
		products.GET("/by_name", productcontroller.GetItemsByName(svc.Items))
		products.GET("/:category/all/items", productcontroller.GetItemsByCategory(svc.Items))
		products.GET("/item/count/by-name", productcontroller.CountItemsByName(svc.Items))
	}
}

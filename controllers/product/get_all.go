package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/shop-api/controllers"
	"github.com/junaidrashid-git/shop-api/dto"
	"github.com/junaidrashid-git/shop-api/services"
)

// GET /api/products/all
func GetAllItems(items *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := items.GetAllItems(c.Request.Context())
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromItems(all))
	}
}

// GET /api/products/:category/all/items
func GetItemsByCategory(items *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := items.GetItemsByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromItems(found))
	}
}

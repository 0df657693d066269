package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/shop-api/controllers"
	"github.com/junaidrashid-git/shop-api/dto"
	"github.com/junaidrashid-git/shop-api/services"
)

// GET /api/products/by_id?itemId=
func GetItemByID(items *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := controllers.QueryID(c, "itemId")
		if err != nil {
			controllers.Error(c, err)
			return
		}

		item, err := items.GetItemByID(c.Request.Context(), id)
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromItem(*item))
	}
}

// GET /api/products/by_name?name=
func GetItemsByName(items *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := items.GetItemsByName(c.Request.Context(), c.Query("name"))
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromItems(found))
	}
}

// GET /api/products/item/count/by-name?name=
func CountItemsByName(items *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")
		count, err := items.CountItemsByName(c.Request.Context(), name)
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": name, "count": count})
	}
}

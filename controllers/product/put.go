package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/shop-api/controllers"
	"github.com/junaidrashid-git/shop-api/dto"
	"github.com/junaidrashid-git/shop-api/services"
)

// UpdateItem replaces every writable field of the item.
// PUT /api/products/update/:itemId
func UpdateItem(items *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := controllers.ParseID(c.Param("itemId"), "itemId")
		if err != nil {
			controllers.Error(c, err)
			return
		}

		var req ItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := items.UpdateItem(c.Request.Context(), id, req.input())
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromItem(*item))
	}
}

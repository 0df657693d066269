package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/shop-api/controllers"
	"github.com/junaidrashid-git/shop-api/services"
)

// DELETE /api/products/delete?itemId=
func DeleteItem(items *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := controllers.QueryID(c, "itemId")
		if err != nil {
			controllers.Error(c, err)
			return
		}

		if err := items.DeleteItem(c.Request.Context(), id); err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
	}
}

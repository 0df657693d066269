package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/shop-api/controllers"
	"github.com/junaidrashid-git/shop-api/services"
)

// GET /api/cart/get_cart_by_id?cartId=
func GetCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := controllers.QueryID(c, "cartId")
		if err != nil {
			controllers.Error(c, err)
			return
		}

		cart, err := carts.GetCartDto(c.Request.Context(), cartID)
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart/clear_cart_by_id?cartId=
func ClearCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := controllers.QueryID(c, "cartId")
		if err != nil {
			controllers.Error(c, err)
			return
		}

		if err := carts.ClearCart(c.Request.Context(), cartID); err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /api/cart/cartid/total-price?cartId=
func GetTotalPrice(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := controllers.QueryID(c, "cartId")
		if err != nil {
			controllers.Error(c, err)
			return
		}

		total, err := carts.GetTotalPrice(c.Request.Context(), cartID)
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cartId": cartID, "totalPrice": total})
	}
}

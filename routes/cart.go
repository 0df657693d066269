package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/junaidrashid-git/shop-api/controllers/cart"
)

func SetupCartRoutes(api *gin.RouterGroup, svc *Services) {
	cartItems := api.Group("/cartItems")
	{
		cartItems.POST("/item/add", cartControllers.AddItem(svc.CartItems))
		cartItems.DELETE("/cart/remove_by_name", cartControllers.RemoveItemByName(svc.CartItems))
		cartItems.PUT("/item/update", cartControllers.UpdateItemQuantity(svc.CartItems))
	}

	cart := api.Group("/cart")
	{
		cart.GET("/get_cart_by_id", cartControllers.GetCart(svc.Carts))
		cart.DELETE("/clear_cart_by_id", cartControllers.ClearCart(svc.Carts))
		cart.GET("/cartid/total-price", cartControllers.GetTotalPrice(svc.Carts))
	}
}

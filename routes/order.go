package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/junaidrashid-git/shop-api/controllers/order"
)

func SetupOrderRoutes(api *gin.RouterGroup, svc *Services) {
	orders := api.Group("/orders")
	{
		// Create a new order from a cart
		orders.POST("/neworder", orderControllers.PlaceOrderHandler(svc.Orders, svc.Hub))

		orders.GET("/orderId", orderControllers.GetOrderHandler(svc.Orders))
		orders.GET("/all", orderControllers.GetAllOrdersHandler(svc.Orders))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", svc.Hub.Handler)
	}
}

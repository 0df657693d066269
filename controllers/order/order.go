package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/shop-api/controllers"
	"github.com/junaidrashid-git/shop-api/dto"
	"github.com/junaidrashid-git/shop-api/services"
)

// Order endpoints always answer 200 with a dto.Response; the outcome is in
// its status and statusCode fields.

// POST /api/orders/neworder?cartId=
func PlaceOrderHandler(orders *services.OrderService, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := controllers.QueryID(c, "cartId")
		if err != nil {
			c.JSON(http.StatusOK, dto.Failure(err))
			return
		}

		order, err := orders.PlaceOrder(c.Request.Context(), cartID)
		if err != nil {
			c.JSON(http.StatusOK, dto.Failure(err))
			return
		}

		data := dto.FromOrder(*order)
		if hub != nil {
			hub.Broadcast(data)
		}
		c.JSON(http.StatusOK, dto.Success("Order created successfully", data))
	}
}

// GET /api/orders/orderId?orderId=
func GetOrderHandler(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := controllers.QueryID(c, "orderId")
		if err != nil {
			c.JSON(http.StatusOK, dto.Failure(err))
			return
		}

		order, err := orders.GetOrder(c.Request.Context(), orderID)
		if err != nil {
			c.JSON(http.StatusOK, dto.Failure(err))
			return
		}
		c.JSON(http.StatusOK, dto.Success("Order retrieved successfully", dto.FromOrder(*order)))
	}
}

// GET /api/orders/all
func GetAllOrdersHandler(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := orders.GetAllOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, dto.Failure(err))
			return
		}
		c.JSON(http.StatusOK, dto.Success("Orders retrieved successfully", dto.FromOrders(all)))
	}
}

package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/shop-api/controllers"
	"github.com/junaidrashid-git/shop-api/dto"
	"github.com/junaidrashid-git/shop-api/services"
)

// CartItemInput names the item by item_id or item_name.
type CartItemInput struct {
	CartID   *uint  `json:"cart_id"`
	ItemID   uint   `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

func (in CartItemInput) ref() services.ItemRef {
	return services.ItemRef{ID: in.ItemID, Name: in.ItemName}
}

// POST /api/cartItems/item/add
func AddItem(lines *services.CartItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := lines.AddItemAndInitialize(c.Request.Context(), input.CartID, input.ref(), input.Quantity)
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "cart": dto.FromCart(*cart)})
	}
}

// DELETE /api/cartItems/cart/remove_by_name?cartId=&itemName=
func RemoveItemByName(lines *services.CartItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := controllers.QueryID(c, "cartId")
		if err != nil {
			controllers.Error(c, err)
			return
		}
		itemName := c.Query("itemName")
		if itemName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "itemName is required"})
			return
		}

		cart, err := lines.RemoveItemFromCart(c.Request.Context(), cartID, services.ItemRef{Name: itemName})
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "cart": dto.FromCart(*cart)})
	}
}

// PUT /api/cartItems/item/update
func UpdateItemQuantity(lines *services.CartItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.CartID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart_id is required"})
			return
		}

		cart, err := lines.UpdateItemQuantity(c.Request.Context(), *input.CartID, input.ref(), input.Quantity)
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item quantity updated", "cart": dto.FromCart(*cart)})
	}
}

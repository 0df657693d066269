package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/shop-api/controllers"
	"github.com/junaidrashid-git/shop-api/dto"
	"github.com/junaidrashid-git/shop-api/services"
	"github.com/shopspring/decimal"
)

// ItemRequest is the body of item create and update. Category is a
// category name; unknown names are created.
type ItemRequest struct {
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Inventory   int              `json:"inventory"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
}

func (r ItemRequest) input() services.ItemInput {
	return services.ItemInput{
		Name:         r.Name,
		Price:        r.Price,
		Inventory:    r.Inventory,
		Description:  r.Description,
		CategoryName: r.Category,
	}
}

// POST /api/products/add
func AddItem(items *services.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := items.AddItem(c.Request.Context(), req.input())
		if err != nil {
			controllers.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.FromItem(*item))
	}
}

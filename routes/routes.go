package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/shop-api/config"
	orderControllers "github.com/junaidrashid-git/shop-api/controllers/order"
	"github.com/junaidrashid-git/shop-api/services"
	"gorm.io/gorm"
)

// Services bundles everything the handlers depend on.
type Services struct {
	Carts      *services.CartService
	CartItems  *services.CartItemService
	Orders     *services.OrderService
	Categories *services.CategoryService
	Items      *services.ItemService
	Hub        *orderControllers.Hub
}

func NewServices(db *gorm.DB, cfg config.Config) *Services {
	carts := services.NewCartService(db, services.RetryPolicy{
		MaxAttempts: cfg.CartCreateAttempts,
		Backoff:     cfg.CartCreateBackoff,
	})
	return &Services{
		Carts:      carts,
		CartItems:  services.NewCartItemService(db, carts),
		Orders:     services.NewOrderService(db, cfg.AllowBackorder),
		Categories: services.NewCategoryService(db),
		Items:      services.NewItemService(db),
		Hub:        orderControllers.NewHub(),
	}
}

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, svc *Services, cfg config.Config) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// 1️⃣ Cart and cart items
	SetupCartRoutes(api, svc)

	// 2️⃣ Orders
	SetupOrderRoutes(api, svc)

	// 3️⃣ Catalog
	SetupCatalogRoutes(api, svc)

	// 4️⃣ Admin routes (API-key or admin JWT)
	SetupAdminRoutes(r, svc, cfg)
}

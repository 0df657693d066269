package dto

import (
	"time"

	"github.com/junaidrashid-git/shop-api/models"
	"github.com/shopspring/decimal"
)

type CategoryDto struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ItemDto struct {
	ItemID      uint             `json:"itemId"`
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Inventory   int              `json:"inventory"`
	Description string           `json:"description"`
	Category    *CategoryDto     `json:"category,omitempty"`
}

type CartItemDto struct {
	ItemID     uint            `json:"itemId"`
	ItemName   string          `json:"itemName"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type CartDto struct {
	CartID      uint            `json:"cartId"`
	Items       []CartItemDto   `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type OrderItemDto struct {
	ItemID      uint            `json:"itemId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type OrderDto struct {
	OrderID     uint            `json:"orderId"`
	OrderRef    string          `json:"orderRef"`
	OrderDate   time.Time       `json:"orderDate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	Items       []OrderItemDto  `json:"items"`
}

func FromCategory(c models.Category) CategoryDto {
	return CategoryDto{ID: c.ID, Name: c.Name}
}

func FromCategories(cs []models.Category) []CategoryDto {
	out := make([]CategoryDto, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCategory(c))
	}
	return out
}

func FromItem(i models.Item) ItemDto {
	d := ItemDto{
		ItemID:      i.ID,
		Name:        i.Name,
		Inventory:   i.Inventory,
		Description: i.Description,
	}
	if i.Price.Valid {
		p := i.Price.Decimal
		d.Price = &p
	}
	if i.Category != nil {
		c := FromCategory(*i.Category)
		d.Category = &c
	}
	return d
}

func FromItems(items []models.Item) []ItemDto {
	out := make([]ItemDto, 0, len(items))
	for _, i := range items {
		out = append(out, FromItem(i))
	}
	return out
}

// FromCart expects Items and Items.Item to be preloaded.
func FromCart(c models.Cart) CartDto {
	d := CartDto{
		CartID:      c.ID,
		Items:       make([]CartItemDto, 0, len(c.Items)),
		TotalAmount: c.TotalAmount,
	}
	for _, ci := range c.Items {
		d.Items = append(d.Items, CartItemDto{
			ItemID:     ci.ItemID,
			ItemName:   ci.Item.Name,
			Quantity:   ci.Quantity,
			UnitPrice:  ci.UnitPrice,
			TotalPrice: ci.TotalPrice,
		})
	}
	return d
}

func FromOrder(o models.Order) OrderDto {
	d := OrderDto{
		OrderID:     o.ID,
		OrderRef:    o.OrderRef,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		Items:       make([]OrderItemDto, 0, len(o.Items)),
	}
	for _, oi := range o.Items {
		d.Items = append(d.Items, OrderItemDto{
			ItemID:      oi.ItemID,
			ProductName: oi.ItemName,
			Quantity:    oi.Quantity,
			Price:       oi.Price,
		})
	}
	return d
}

func FromOrders(orders []models.Order) []OrderDto {
	out := make([]OrderDto, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

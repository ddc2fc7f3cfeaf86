package converter

import (
	"time"

	"github.com/avGenie/go-order-lifecycle/internal/app/entity"
)

// CartToLineItems snapshots cart entries; later catalog changes never reach
// the order.
func CartToLineItems(cart entity.CartItems) entity.LineItems {
	items := make(entity.LineItems, 0, len(cart))
	for _, entry := range cart {
		items = append(items, entity.LineItem{
			DishID:     entry.DishID,
			SetmealID:  entry.SetmealID,
			Name:       entry.Name,
			Image:      entry.Image,
			DishFlavor: entry.DishFlavor,
			UnitPrice:  entry.UnitPrice,
			Quantity:   entry.Quantity,
		})
	}

	return items
}

func LineItemsToCart(userID entity.UserID, items entity.LineItems, createdAt time.Time) entity.CartItems {
	cart := make(entity.CartItems, 0, len(items))
	for _, item := range items {
		cart = append(cart, entity.CartItem{
			UserID:     userID,
			DishID:     item.DishID,
			SetmealID:  item.SetmealID,
			Name:       item.Name,
			Image:      item.Image,
			DishFlavor: item.DishFlavor,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			CreatedAt:  createdAt,
		})
	}

	return cart
}

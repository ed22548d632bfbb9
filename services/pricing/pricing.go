// Package pricing computes the display-side price previews. The numbers are
// a convenience mirror of what the backends persist; nothing here is
// authoritative.
package pricing

import (
	"fmt"
	"math"

	"koshub/models"
)

// Quote is a discounted price breakdown for one accommodation.
type Quote struct {
	BasePrice  int64
	Discount   int64
	FinalPrice int64
}

// AccommodationQuote applies the user's membership discount to a monthly
// price: discount = price * rate, final = price - discount. A zero rate
// yields a zero discount, which the view uses to hide the discount line.
func AccommodationQuote(price int64, discountRate float64) Quote {
	discount := int64(math.Round(float64(price) * discountRate))
	return Quote{
		BasePrice:  price,
		Discount:   discount,
		FinalPrice: price - discount,
	}
}

// LaundryTotal prices a laundry order from the fixed per-kg rate table.
func LaundryTotal(serviceType string, weight float64) (int64, error) {
	rate, ok := models.LaundryPrices[serviceType]
	if !ok {
		return 0, fmt.Errorf("unknown laundry service type %q", serviceType)
	}
	return int64(math.Round(float64(rate) * weight)), nil
}

// CateringTotal prices a catering order as menu item price * quantity, with
// the item looked up by meal type and name.
func CateringTotal(menu *models.CateringMenu, mealType, menuName string, quantity int) (int64, error) {
	item, ok := menu.Find(mealType, menuName)
	if !ok {
		return 0, fmt.Errorf("menu item %q not found for %s", menuName, mealType)
	}
	return item.Price * int64(quantity), nil
}

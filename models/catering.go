package models

// Catering meal types.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// Catering order statuses.
const (
	CateringStatusPending    = "pending"
	CateringStatusConfirmed  = "confirmed"
	CateringStatusPreparing  = "preparing"
	CateringStatusOnDelivery = "on_delivery"
	CateringStatusDelivered  = "delivered"
	CateringStatusCancelled  = "cancelled"
)

// MenuItem is one orderable dish.
type MenuItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CateringMenu is read-only reference data fetched from the living-support
// service, keyed by meal type.
type CateringMenu struct {
	Breakfast []MenuItem `json:"breakfast"`
	Lunch     []MenuItem `json:"lunch"`
	Dinner    []MenuItem `json:"dinner"`
	Snack     []MenuItem `json:"snack"`
}

// Items returns the menu entries for the given meal type.
func (m *CateringMenu) Items(mealType string) []MenuItem {
	switch mealType {
	case MealBreakfast:
		return m.Breakfast
	case MealLunch:
		return m.Lunch
	case MealDinner:
		return m.Dinner
	case MealSnack:
		return m.Snack
	}
	return nil
}

// Find looks up a menu item by meal type and name.
func (m *CateringMenu) Find(mealType, name string) (MenuItem, bool) {
	for _, item := range m.Items(mealType) {
		if item.Name == name {
			return item, true
		}
	}
	return MenuItem{}, false
}

// CateringOrder mirrors the living-support service's catering resource.
type CateringOrder struct {
	ID              int    `json:"id"`
	UserID          string `json:"user_id"`
	BookingID       int    `json:"booking_id"`
	MealType        string `json:"meal_type"`
	MenuName        string `json:"menu_name"`
	Quantity        int    `json:"quantity"`
	DeliveryDate    string `json:"delivery_date"`
	DeliveryTime    string `json:"delivery_time"`
	TotalPrice      int64  `json:"total_price"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// CreateCateringData is the catering order creation payload.
type CreateCateringData struct {
	BookingID       int    `json:"booking_id"`
	MealType        string `json:"meal_type"`
	MenuName        string `json:"menu_name"`
	Quantity        int    `json:"quantity"`
	DeliveryDate    string `json:"delivery_date"`
	DeliveryTime    string `json:"delivery_time"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

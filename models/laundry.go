package models

// Laundry service types.
const (
	LaundryWash     = "wash"
	LaundryWashIron = "wash_iron"
	LaundryDryClean = "dry_clean"
	LaundryIronOnly = "iron_only"
)

// Laundry order statuses.
const (
	LaundryStatusPending    = "pending"
	LaundryStatusPickedUp   = "picked_up"
	LaundryStatusInProgress = "in_progress"
	LaundryStatusReady      = "ready"
	LaundryStatusDelivered  = "delivered"
	LaundryStatusCancelled  = "cancelled"
)

// LaundryPrices is the fixed per-kg rate table in rupiah.
var LaundryPrices = map[string]int64{
	LaundryWash:     5000,
	LaundryWashIron: 7000,
	LaundryDryClean: 15000,
	LaundryIronOnly: 3000,
}

// LaundryServiceNames maps service types to display labels.
var LaundryServiceNames = map[string]string{
	LaundryWash:     "Cuci Saja",
	LaundryWashIron: "Cuci + Setrika",
	LaundryDryClean: "Dry Clean",
	LaundryIronOnly: "Setrika Saja",
}

// LaundryOrder mirrors the living-support service's laundry resource.
type LaundryOrder struct {
	ID           int     `json:"id"`
	UserID       string  `json:"user_id"`
	BookingID    int     `json:"booking_id"`
	ServiceType  string  `json:"service_type"`
	Weight       float64 `json:"weight"`
	PickupDate   string  `json:"pickup_date"`
	PickupTime   string  `json:"pickup_time"`
	DeliveryDate string  `json:"delivery_date,omitempty"`
	DeliveryTime string  `json:"delivery_time,omitempty"`
	TotalPrice   int64   `json:"total_price"`
	Notes        string  `json:"notes,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at,omitempty"`
}

// CreateLaundryData is the laundry order creation payload.
type CreateLaundryData struct {
	BookingID   int     `json:"booking_id"`
	ServiceType string  `json:"service_type"`
	Weight      float64 `json:"weight"`
	PickupDate  string  `json:"pickup_date"`
	PickupTime  string  `json:"pickup_time"`
	Notes       string  `json:"notes,omitempty"`
}

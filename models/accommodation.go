package models

// Accommodation is a kos listing from the accommodation service. Price is the
// monthly rate in whole rupiah. AvailableUnits gates booking eligibility.
type Accommodation struct {
	AccommodationID int    `json:"accommodation_id"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Price           int64  `json:"price"`
	TotalUnits      int    `json:"total_units"`
	AvailableUnits  int    `json:"available_units"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// CreateAccommodationData is the create/update payload for a listing.
type CreateAccommodationData struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Price          int64  `json:"price"`
	TotalUnits     int    `json:"total_units"`
	AvailableUnits int    `json:"available_units"`
}

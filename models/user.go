package models

// Membership levels determine the discount rate applied to bookings.
const (
	MembershipBasic  = "BASIC"
	MembershipSilver = "SILVER"
	MembershipGold   = "GOLD"
)

// User is the profile shape returned by the accommodation service.
type User struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	MembershipLevel string  `json:"membership_level"`
	DiscountRate    float64 `json:"discount_rate"`
}

// LoginCredentials is the login request payload.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData is the registration request payload.
type RegisterData struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name,omitempty"`
	MembershipLevel string `json:"membership_level,omitempty"`
}

// AuthResponse is the canonical login/register response. The upstream may
// nest these fields under a session wrapper; the client normalizes both
// shapes into this one.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	User        User   `json:"user"`
}

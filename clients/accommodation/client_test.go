package accommodation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"koshub/clients/rest"
	"koshub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop()), srv
}

func TestLoginNormalizesFlatResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds models.LoginCredentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "budi@example.com", creds.Email)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok-123",
			"expires_in":   7200,
			"user": map[string]interface{}{
				"id":               "u-1",
				"email":            "budi@example.com",
				"name":             "Budi",
				"membership_level": "GOLD",
				"discount_rate":    0.10,
			},
		})
	}))

	auth, err := client.Login(context.Background(), models.LoginCredentials{
		Email:    "budi@example.com",
		Password: "rahasia",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", auth.AccessToken)
	assert.Equal(t, 7200, auth.ExpiresIn)
	assert.Equal(t, "GOLD", auth.User.MembershipLevel)
	assert.Equal(t, 0.10, auth.User.DiscountRate)
}

func TestLoginNormalizesSessionWrappedResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"session": map[string]interface{}{
				"access_token": "tok-456",
				"user": map[string]interface{}{
					"id":               "u-2",
					"email":            "sari@example.com",
					"membership_level": "SILVER",
					"discount_rate":    0.05,
				},
			},
		})
	}))

	auth, err := client.Login(context.Background(), models.LoginCredentials{Email: "sari@example.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "tok-456", auth.AccessToken)
	// The wrapper omitted expires_in, so it defaults.
	assert.Equal(t, 3600, auth.ExpiresIn)
	assert.Equal(t, "u-2", auth.User.ID)
}

func TestLoginPreservesUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))

	_, err := client.Login(context.Background(), models.LoginCredentials{Email: "x", Password: "y"})
	require.Error(t, err)

	apiErr, ok := rest.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Equal(t, "Invalid credentials", rest.ErrorMessage(err, "fallback"))
}

func TestGetUserByIDAttachesBearerToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/u-1", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.User{ID: "u-1", Name: "Budi"})
	}))

	user, err := client.GetUserByID(context.Background(), "tok-123", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Budi", user.Name)
}

func TestGetBookingsForUserNormalizesSingleObject(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Booking{BookingID: 7, Status: models.BookingPending})
	}))

	bookings, err := client.GetBookingsForUser(context.Background(), "tok", "u-1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, 7, bookings[0].BookingID)
}

func TestGetBookingsForUserNormalizesArray(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Booking{
			{BookingID: 1, Status: models.BookingSuccess},
			{BookingID: 2, Status: models.BookingCancelled},
		})
	}))

	bookings, err := client.GetBookingsForUser(context.Background(), "tok", "u-1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
}

func TestGetBookingsForUserNullBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	}))

	bookings, err := client.GetBookingsForUser(context.Background(), "tok", "u-1")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestUpdateBookingStatusPayload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/bookings/9", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "SUCCESS", body["status"])
		assert.Equal(t, float64(3), body["accommodation_id"])

		json.NewEncoder(w).Encode(models.Booking{BookingID: 9, Status: models.BookingSuccess})
	}))

	booking, err := client.UpdateBookingStatus(context.Background(), "tok", 9, models.BookingSuccess, 3)
	require.NoError(t, err)
	assert.Equal(t, models.BookingSuccess, booking.Status)
}

func TestCreateBooking(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/bookings", r.URL.Path)

		var data models.CreateBookingData
		require.NoError(t, json.NewDecoder(r.Body).Decode(&data))
		assert.Equal(t, 3, data.AccommodationID)

		json.NewEncoder(w).Encode(models.Booking{
			BookingID:       42,
			AccommodationID: data.AccommodationID,
			BasePrice:       1000000,
			DiscountApplied: 50000,
			FinalPrice:      950000,
			Status:          models.BookingPending,
		})
	}))

	booking, err := client.CreateBooking(context.Background(), "tok", models.CreateBookingData{
		AccommodationID: 3,
		StartDate:       "2026-09-01",
		EndDate:         "2026-10-01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, int64(950000), booking.FinalPrice)
	assert.Equal(t, int64(50000), booking.DiscountApplied)
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, zap.NewNop())
	_, err := client.GetAccommodations(context.Background(), "")
	require.Error(t, err)
	_, ok := rest.AsAPIError(err)
	assert.False(t, ok)
	assert.Equal(t, "fallback", rest.ErrorMessage(err, "fallback"))
}

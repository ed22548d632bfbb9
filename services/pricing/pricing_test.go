package pricing

import (
	"testing"

	"koshub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccommodationQuote(t *testing.T) {
	tests := []struct {
		name         string
		price        int64
		rate         float64
		wantDiscount int64
		wantFinal    int64
	}{
		{"basic member pays full price", 1000000, 0, 0, 1000000},
		{"silver member gets 5 percent off", 1000000, 0.05, 50000, 950000},
		{"gold member gets 10 percent off", 1000000, 0.10, 100000, 900000},
		{"odd price rounds the discount", 999999, 0.05, 50000, 949999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := AccommodationQuote(tt.price, tt.rate)
			assert.Equal(t, tt.price, q.BasePrice)
			assert.Equal(t, tt.wantDiscount, q.Discount)
			assert.Equal(t, tt.wantFinal, q.FinalPrice)
		})
	}
}

func TestLaundryTotal(t *testing.T) {
	tests := []struct {
		serviceType string
		weight      float64
		want        int64
	}{
		{models.LaundryWash, 1, 5000},
		{models.LaundryWashIron, 2, 14000},
		{models.LaundryDryClean, 1.5, 22500},
		{models.LaundryIronOnly, 3, 9000},
	}
	for _, tt := range tests {
		total, err := LaundryTotal(tt.serviceType, tt.weight)
		require.NoError(t, err)
		assert.Equal(t, tt.want, total, "service %s weight %v", tt.serviceType, tt.weight)
	}
}

func TestLaundryTotalUnknownService(t *testing.T) {
	_, err := LaundryTotal("fold_only", 1)
	assert.Error(t, err)
}

func TestCateringTotal(t *testing.T) {
	menu := &models.CateringMenu{
		Breakfast: []models.MenuItem{{Name: "Nasi Uduk", Price: 15000}},
		Lunch:     []models.MenuItem{{Name: "Ayam Geprek", Price: 25000}},
	}

	total, err := CateringTotal(menu, models.MealLunch, "Ayam Geprek", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(75000), total)

	// Lookup is scoped to the selected meal type.
	_, err = CateringTotal(menu, models.MealBreakfast, "Ayam Geprek", 1)
	assert.Error(t, err)

	_, err = CateringTotal(menu, models.MealSnack, "Pisang Goreng", 1)
	assert.Error(t, err)
}

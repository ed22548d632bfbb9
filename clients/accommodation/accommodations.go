package accommodation

import (
	"context"
	"strconv"

	"koshub/models"
)

// GetAccommodations lists all kos.
func (c *Client) GetAccommodations(ctx context.Context, token string) ([]models.Accommodation, error) {
	var out []models.Accommodation
	if err := c.rest.Get(ctx, "/accommodations", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAccommodation fetches a single listing.
func (c *Client) GetAccommodation(ctx context.Context, token string, id int) (*models.Accommodation, error) {
	var out models.Accommodation
	if err := c.rest.Get(ctx, "/accommodations/"+strconv.Itoa(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAccommodation creates a listing.
func (c *Client) CreateAccommodation(ctx context.Context, token string, data models.CreateAccommodationData) (*models.Accommodation, error) {
	var out models.Accommodation
	if err := c.rest.Post(ctx, "/accommodations", token, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAccommodation updates a listing.
func (c *Client) UpdateAccommodation(ctx context.Context, token string, id int, data models.CreateAccommodationData) (*models.Accommodation, error) {
	var out models.Accommodation
	if err := c.rest.Put(ctx, "/accommodations/"+strconv.Itoa(id), token, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccommodation removes a listing.
func (c *Client) DeleteAccommodation(ctx context.Context, token string, id int) error {
	return c.rest.Delete(ctx, "/accommodations/"+strconv.Itoa(id), token, nil)
}

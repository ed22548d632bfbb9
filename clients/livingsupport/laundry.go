package livingsupport

import (
	"context"
	"strconv"

	"koshub/models"
)

// GetLaundryOrders lists the caller's laundry orders.
func (c *Client) GetLaundryOrders(ctx context.Context, token string) ([]models.LaundryOrder, error) {
	var out []models.LaundryOrder
	if err := c.rest.Get(ctx, "/api/laundry", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLaundryOrder fetches a single laundry order.
func (c *Client) GetLaundryOrder(ctx context.Context, token string, id int) (*models.LaundryOrder, error) {
	var out models.LaundryOrder
	if err := c.rest.Get(ctx, "/api/laundry/"+strconv.Itoa(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLaundryOrder places a new laundry order against a SUCCESS booking.
func (c *Client) CreateLaundryOrder(ctx context.Context, token string, data models.CreateLaundryData) (*models.LaundryOrder, error) {
	var out models.LaundryOrder
	if err := c.rest.Post(ctx, "/api/laundry", token, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLaundryOrder updates order fields.
func (c *Client) UpdateLaundryOrder(ctx context.Context, token string, id int, data models.CreateLaundryData) (*models.LaundryOrder, error) {
	var out models.LaundryOrder
	if err := c.rest.Put(ctx, "/api/laundry/"+strconv.Itoa(id), token, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLaundryStatus moves an order through its lifecycle. Delivery date and
// time are optional and only meaningful for the delivered transition.
func (c *Client) UpdateLaundryStatus(ctx context.Context, token string, id int, status, deliveryDate, deliveryTime string) (*models.LaundryOrder, error) {
	body := map[string]string{"status": status}
	if deliveryDate != "" {
		body["delivery_date"] = deliveryDate
	}
	if deliveryTime != "" {
		body["delivery_time"] = deliveryTime
	}
	var out models.LaundryOrder
	if err := c.rest.Put(ctx, "/api/laundry/"+strconv.Itoa(id)+"/status", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelLaundryOrder cancels an order.
func (c *Client) CancelLaundryOrder(ctx context.Context, token string, id int) error {
	return c.rest.Delete(ctx, "/api/laundry/"+strconv.Itoa(id), token, nil)
}

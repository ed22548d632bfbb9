package livingsupport

import (
	"context"
	"strconv"

	"koshub/models"
)

// menuEnvelope decodes both the bare menu and the {menu: ...} wrapper.
type menuEnvelope struct {
	models.CateringMenu
	Menu *models.CateringMenu `json:"menu"`
}

// GetMenu fetches the catering menu, unwrapping the optional envelope.
func (c *Client) GetMenu(ctx context.Context, token string) (*models.CateringMenu, error) {
	var envelope menuEnvelope
	if err := c.rest.Get(ctx, "/api/catering/menu", token, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Menu != nil {
		return envelope.Menu, nil
	}
	menu := envelope.CateringMenu
	return &menu, nil
}

// GetCateringOrders lists the caller's catering orders.
func (c *Client) GetCateringOrders(ctx context.Context, token string) ([]models.CateringOrder, error) {
	var out []models.CateringOrder
	if err := c.rest.Get(ctx, "/api/catering", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCateringOrder fetches a single catering order.
func (c *Client) GetCateringOrder(ctx context.Context, token string, id int) (*models.CateringOrder, error) {
	var out models.CateringOrder
	if err := c.rest.Get(ctx, "/api/catering/"+strconv.Itoa(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCateringOrder places a new catering order against a SUCCESS booking.
func (c *Client) CreateCateringOrder(ctx context.Context, token string, data models.CreateCateringData) (*models.CateringOrder, error) {
	var out models.CateringOrder
	if err := c.rest.Post(ctx, "/api/catering", token, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCateringOrder updates order fields.
func (c *Client) UpdateCateringOrder(ctx context.Context, token string, id int, data models.CreateCateringData) (*models.CateringOrder, error) {
	var out models.CateringOrder
	if err := c.rest.Put(ctx, "/api/catering/"+strconv.Itoa(id), token, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCateringStatus moves an order through its lifecycle.
func (c *Client) UpdateCateringStatus(ctx context.Context, token string, id int, status string) (*models.CateringOrder, error) {
	body := map[string]string{"status": status}
	var out models.CateringOrder
	if err := c.rest.Put(ctx, "/api/catering/"+strconv.Itoa(id)+"/status", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelCateringOrder cancels an order.
func (c *Client) CancelCateringOrder(ctx context.Context, token string, id int) error {
	return c.rest.Delete(ctx, "/api/catering/"+strconv.Itoa(id), token, nil)
}

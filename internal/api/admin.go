package api

import (
	"context"
	"net/http"

	"github.com/kidandcat/promanager/internal/models"
)

// Stats is public: the home page shows the counters to everyone.
func (c *Client) Stats(ctx context.Context) (models.Stats, error) {
	env, err := c.getJSON(ctx, "/auth/stats")
	if err != nil {
		return models.Stats{}, err
	}
	if env.Stats != nil {
		return *env.Stats, nil
	}
	return decodeData[models.Stats](env)
}

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	env, err := c.getJSON(ctx, "/auth/users")
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.User](env)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/auth/users/"+escape(id), nil, "")
	return err
}

// ToggleUser flips the active flag server side and returns the new value
// with the server's message.
func (c *Client) ToggleUser(ctx context.Context, id string) (bool, string, error) {
	env, err := c.do(ctx, http.MethodPut, "/auth/users/"+escape(id)+"/toggle", nil, "")
	if err != nil {
		return false, "", err
	}
	if env.Status != nil {
		return *env.Status, env.Message, nil
	}
	u, err := decodeData[models.User](env)
	return u.IsActive, env.Message, err
}

// Activities returns the admin feed. A missing list reads as empty.
func (c *Client) Activities(ctx context.Context) ([]models.Activity, error) {
	env, err := c.getJSON(ctx, "/auth/activities")
	if err != nil {
		return nil, err
	}
	list, err := decodeData[[]models.Activity](env)
	if list == nil && err == nil {
		list = []models.Activity{}
	}
	return list, err
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kidandcat/promanager/internal/models"
	"github.com/kidandcat/promanager/internal/session"
)

// Login exchanges credentials for a token and writes the session store,
// which notifies every subscriber before Login returns.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (session.Session, error) {
	env, err := c.sendJSON(ctx, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return session.Session{}, err
	}
	user, token, err := userFrom(env)
	if err != nil {
		return session.Session{}, err
	}
	if token == "" {
		return session.Session{}, ErrNoToken
	}
	sess := session.Session{Token: token, User: user}
	if err := c.session.Write(sess); err != nil {
		return session.Session{}, fmt.Errorf("store session: %w", err)
	}
	c.log.Info().Str("user", user.ID).Str("role", string(user.Role)).Msg("logged in")
	return sess, nil
}

func (c *Client) Register(ctx context.Context, reg models.Registration) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/auth/register", reg)
	return err
}

// Logout is client side only: the API keeps no session to revoke.
func (c *Client) Logout() {
	c.session.Clear()
}

// UpdateProfile sends the profile form and stores the returned user under
// the current token.
func (c *Client) UpdateProfile(ctx context.Context, in models.ProfileInput, avatar *models.Upload) (models.User, error) {
	body, ctype, err := multipartBody([][2]string{{"name", in.Name}, {"email", in.Email}}, "avatar", avatar)
	if err != nil {
		return models.User{}, err
	}
	env, err := c.do(ctx, http.MethodPut, "/auth/profile", body, ctype)
	if err != nil {
		return models.User{}, err
	}
	user, _, err := userFrom(env)
	if err != nil {
		return models.User{}, err
	}
	if err := c.session.UpdateUser(user); err != nil {
		return models.User{}, fmt.Errorf("store session: %w", err)
	}
	return user, nil
}

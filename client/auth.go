package client

import "context"

type AdminUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	User AdminUser `json:"user"`
}

// Login authenticates the admin. On success the server sets the session
// cookie, which the client's jar keeps for every following call.
func (c *Client) Login(ctx context.Context, username, password string) (AdminUser, error) {
	body := map[string]string{"username": username, "password": password}
	var resp loginResponse
	if err := c.Post(ctx, "/auth/admin/login", body, &resp); err != nil {
		return AdminUser{}, err
	}
	return resp.User, nil
}

// Check reports whether the stored session cookie is still accepted.
func (c *Client) Check(ctx context.Context) error {
	return c.Get(ctx, "/auth/admin/check", nil)
}

// Logout clears the session server-side; the cookie is invalidated.
func (c *Client) Logout(ctx context.Context) error {
	return c.Post(ctx, "/auth/admin/logout", nil, nil)
}

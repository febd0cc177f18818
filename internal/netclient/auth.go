package netclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-studio/internal/session"
)

// AuthResponse is the backend reply to register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
}

// Register creates an account and stores the issued session.
func (c *Client) Register(ctx context.Context, name, email, password string) (session.Session, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, "register", http.MethodPost, "/auth/register", body, &resp); err != nil {
		return session.Session{}, err
	}
	return c.adopt(resp)
}

// Login authenticates and stores the issued session.
func (c *Client) Login(ctx context.Context, email, password string) (session.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", body, &resp); err != nil {
		return session.Session{}, err
	}
	return c.adopt(resp)
}

// Logout invalidates the stored session.
func (c *Client) Logout() error {
	return c.sessions.Invalidate()
}

func (c *Client) adopt(resp AuthResponse) (session.Session, error) {
	s := session.Session{Token: resp.Token, User: resp.User}
	if err := c.sessions.Refresh(s); err != nil {
		return session.Session{}, fmt.Errorf("failed to store session: %w", err)
	}
	return s, nil
}

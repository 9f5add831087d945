package client

import (
	"context"
	"net/http"
	"time"
)

type Account struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type authResult struct {
	Token string  `json:"token"`
	User  Account `json:"user"`
}

// Signup registers a new account and activates its session.
func (c *Client) Signup(ctx context.Context, name, email, password string) (Account, error) {
	var result authResult
	err := c.do(ctx, http.MethodPost, "/auth/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &result)
	if err != nil {
		return Account{}, err
	}

	c.session.SetToken(result.Token)

	return result.User, nil
}

// Login exchanges credentials for a bearer token and activates the session.
func (c *Client) Login(ctx context.Context, email, password string) (Account, error) {
	var result authResult
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &result)
	if err != nil {
		return Account{}, err
	}

	c.session.SetToken(result.Token)

	return result.User, nil
}

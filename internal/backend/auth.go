package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. The auth endpoint lives
// outside the versioned prefix.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	req := loginRequest{Email: strings.TrimSpace(email), Password: password}
	if err := c.doJSON(ctx, "auth.login", http.MethodPost, c.baseURL+"/api/auth/login", req, "", &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("login response did not contain a token")
	}
	return out.Token, nil
}

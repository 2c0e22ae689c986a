// Package api is the HTTP client for the Acadex backend. It speaks the JSON
// wire protocol and converts server failure bodies into *APIError values the
// session layer can classify.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// User is the public projection of an identity as the server returns it.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty"`
	OTP      string `json:"otp,omitempty"`
}

// AuthResponse is the success body of register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// APIError carries the status code and server-supplied message of a non-2xx
// response. Transport-level failures are returned as ordinary errors, not
// APIErrors.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given base URL (no trailing slash
// required).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the resolved backend address this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// decodeError converts a non-2xx response into an *APIError, preferring the
// server's message field.
func decodeError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &body)
	return &APIError{StatusCode: resp.StatusCode, Message: body.Message}
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Register creates a new identity and returns its token and public
// projection.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.postJSON(ctx, "/api/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login verifies a credential submission and returns a token plus the public
// identity.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.postJSON(ctx, "/api/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the identity bound to token.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.getJSON(ctx, "/api/me", token, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Package api is a thin HTTP client for the shopkeeper backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Session is what a successful login returns: the account identity plus the
// bearer token for subsequent requests.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Product mirrors the server's catalog item.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Count    int64  `json:"count"`
	ImageURL string `json:"image_url"`
}

// Error carries the server's response on a non-2xx status.
type Error struct {
	Status   int
	Messages []string
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// errBody is the union of the server's error response shapes:
// {"message": "..."}, {"errors": [...]}, {"error": "..."}.
type errBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
	Error   string   `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &Error{Status: resp.StatusCode}
		var eb errBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
			switch {
			case len(eb.Errors) > 0:
				apiErr.Messages = eb.Errors
			case eb.Message != "":
				apiErr.Messages = []string{eb.Message}
			case eb.Error != "":
				apiErr.Messages = []string{eb.Error}
			}
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	in := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/signup", "", in, nil)
}

// Login authenticates and returns the session with the issued token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	in := map[string]string{"email": email, "password": password}
	var s Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Products lists the catalog. Requires a valid token.
func (c *Client) Products(ctx context.Context, token string) ([]*Product, error) {
	var products []*Product
	if err := c.do(ctx, http.MethodGet, "/api/categories/products", token, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// AddProducts inserts a batch of catalog items. Requires a valid token.
func (c *Client) AddProducts(ctx context.Context, token string, batch []*Product) ([]*Product, error) {
	var out struct {
		Products []*Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/categories", token, batch, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// Package api is the HTTP gateway to the vault server. It decorates
// every request with the bearer token when one is set, decodes JSON
// responses and maps failures onto the client's error taxonomy.
// There are no retries, no caching and no request de-duplication.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"passvault/internal/client/config"
	"passvault/internal/vault"
)

type Client struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func New(cfg *config.Config, log *slog.Logger) *Client {
	return &Client{
		client:    &http.Client{Timeout: cfg.RequestTimeout},
		log:       log,
		baseURL:   strings.TrimRight(cfg.ServerURL, "/"),
		userAgent: "passvault-client/1.0",
	}
}

// SetToken sets the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// ClearToken drops the bearer token; subsequent requests go out
// unauthenticated.
func (c *Client) ClearToken() {
	c.token = ""
}

// Login exchanges credentials for a bearer token. The token endpoint
// is the one call that takes a form-encoded body instead of JSON.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/login/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug("sending request", "method", req.Method, "url", req.URL.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.parseResponse(resp, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("server response missing token")
	}
	return out.AccessToken, nil
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, email, password string) error {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	resp, err := c.doRequest(ctx, http.MethodPost, "/users/", nil, body)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// RequestPasswordReset asks the server to mail a recovery link. The
// server answers the same way whether or not the account exists.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	resp, err := c.doRequest(ctx, http.MethodPost,
		"/login/password-recovery/"+url.PathEscape(email), nil, nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// ConfirmPasswordReset redeems a recovery token for a new password.
func (c *Client) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	body := struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}{token, newPassword}

	resp, err := c.doRequest(ctx, http.MethodPost, "/login/reset-password/", nil, body)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// ListItems fetches the vault, optionally filtered by a search
// substring. Returned items carry no passwords.
func (c *Client) ListItems(ctx context.Context, query string) ([]vault.Item, error) {
	var params url.Values
	if query != "" {
		params = url.Values{"q": []string{query}}
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/vault/", params, nil)
	if err != nil {
		return nil, err
	}

	var items []vault.Item
	if err := c.parseResponse(resp, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem fetches a single record, including its decrypted password.
func (c *Client) GetItem(ctx context.Context, id int) (vault.Item, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/vault/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return vault.Item{}, err
	}

	var item vault.Item
	if err := c.parseResponse(resp, &item); err != nil {
		return vault.Item{}, err
	}
	return item, nil
}

// CreateItem inserts a new record and returns the server's copy.
func (c *Client) CreateItem(ctx context.Context, req vault.CreateRequest) (vault.Item, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/vault/", nil, req)
	if err != nil {
		return vault.Item{}, err
	}

	var item vault.Item
	if err := c.parseResponse(resp, &item); err != nil {
		return vault.Item{}, err
	}
	return item, nil
}

// UpdateItem updates an existing record. When req.Password is nil the
// payload carries no password field and the stored secret is kept.
func (c *Client) UpdateItem(ctx context.Context, id int, req vault.UpdateRequest) (vault.Item, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/vault/"+strconv.Itoa(id), nil, req)
	if err != nil {
		return vault.Item{}, err
	}

	var item vault.Item
	if err := c.parseResponse(resp, &item); err != nil {
		return vault.Item{}, err
	}
	return item, nil
}

// DeleteItem removes a record by id.
func (c *Client) DeleteItem(ctx context.Context, id int) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/vault/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

func (c *Client) doRequest(ctx context.Context, method, path string, params url.Values, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	return resp, nil
}

func (c *Client) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	c.log.Debug("received response", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Detail: decodeDetail(body)}
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

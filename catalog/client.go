package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrNetwork reports a request that could not complete or came back non-2xx.
	ErrNetwork = errors.New("catalog: request failed")

	// ErrAuth reports a login or registration rejected by the server.
	ErrAuth = errors.New("catalog: authentication rejected")
)

// No timeout is mandated by the wire contract; 15s is the client default.
const defaultTimeout = 15 * time.Second

// Session is the explicit authentication context for a client. It is
// populated by Login/Register and cleared by Logout; nothing is stored
// outside this object.
type Session struct {
	Token string
	Name  string
	Email string
}

// Client talks to the sevenxleaks backend.
type Client struct {
	http *resty.Client

	mu      sync.Mutex
	session *Session
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithRetry enables retries for transient transport failures.
func WithRetry(count int, wait time.Duration) Option {
	return func(c *Client) {
		c.http.SetRetryCount(count).SetRetryWaitTime(wait)
	}
}

// NewClient creates a catalog client for the given backend base URL,
// attaching the frontend API key to every request.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	hc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("x-api-key", apiKey)

	c := &Client{http: hc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the current session, or nil when logged out.
func (c *Client) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Logout clears the session context.
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = nil
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if s := c.Session(); s != nil && s.Token != "" {
		req.SetHeader("Authorization", "Bearer "+s.Token)
	}
	return req
}

// Search fetches one result page for a tier and decodes the envelope.
func (c *Client) Search(ctx context.Context, tier Tier, q QueryState) (Envelope, error) {
	var body struct {
		Data string `json:"data"`
	}
	resp, err := c.request(ctx).
		SetResult(&body).
		Get(fmt.Sprintf("/%scontent/search?%s", tier, q.Encode()))
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return Envelope{}, fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode())
	}
	if body.Data == "" {
		return Envelope{}, ErrInvalidEnvelope
	}
	return Decode(body.Data)
}

// Detail fetches a single content item by slug within a tier.
func (c *Client) Detail(ctx context.Context, tier Tier, slug string) (ContentItem, error) {
	var item ContentItem
	resp, err := c.request(ctx).
		SetResult(&item).
		Get(fmt.Sprintf("/%scontent/%s", tier, slug))
	if err != nil {
		return ContentItem{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return ContentItem{}, fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode())
	}
	return item, nil
}

// Categories lists the distinct category facets of the free tier.
func (c *Client) Categories(ctx context.Context) ([]CategoryFacet, error) {
	var facets []CategoryFacet
	resp, err := c.request(ctx).SetResult(&facets).Get("/categories")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode())
	}
	return facets, nil
}

// Login authenticates and populates the session context.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var body struct {
		Token string `json:"token"`
		Name  string `json:"name"`
	}
	resp, err := c.request(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&body).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.StatusCode() != http.StatusOK || body.Token == "" {
		return nil, ErrAuth
	}

	s := &Session{Token: body.Token, Name: body.Name, Email: email}
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
	return s, nil
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	VIP      bool   `json:"vip"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Register creates an account and logs in with the new credentials.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	resp, err := c.request(ctx).SetBody(req).Post("/auth/register")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return nil, ErrAuth
	}
	return c.Login(ctx, req.Email, req.Password)
}

// Package remote implements the data-access contract as a thin client over
// the note service's HTTP API. It translates the server's wire shapes and
// endpoint set into the local contract: stable field names, sentinel errors,
// and the 401 side effect of dropping the cached session snapshot.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"snapnote/internal/logging"
	"snapnote/internal/session"
	"snapnote/internal/store"
)

// sessionCookie is the HttpOnly cookie the server issues on signup/login.
// Its value is a JWT; the client never validates it (the server does) but
// peeks at the registered claims to learn when the session lapses.
const sessionCookie = "access_token"

// listLimit is sent with every list call. The server defaults to 10 items
// when the parameter is missing, which is never what a full listing wants.
const listLimit = 1000

// Client is the remote backend facade. One Client owns one cookie jar, so
// the session credential follows every request made through it.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Manager
	log      logging.Logger

	mu       sync.Mutex
	tokenExp time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout caps each request round trip.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient swaps the underlying transport. The cookie jar is installed
// on whatever client ends up in use.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New returns a Client for the API at baseURL. When the server reports the
// credential invalid, the given session manager is cleared as a side effect.
func New(baseURL string, sessions *session.Manager, log logging.Logger, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid server address %q: %w", baseURL, err)
	}
	if log == nil {
		log = logging.Nop()
	}

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 15 * time.Second},
		sessions: sessions,
		log:      log.With("backend", "remote"),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		c.http.Jar = jar
	}
	return c, nil
}

func (c *Client) Users() store.Users { return &usersManager{c} }
func (c *Client) Notes() store.Notes { return &notesManager{c} }
func (c *Client) Tags() store.Tags   { return &tagsManager{c} }

func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// SessionExpiry reports when the current session credential lapses,
// according to the token the server last issued. ok is false before the
// first login or after the server has rejected the credential.
func (c *Client) SessionExpiry() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokenExp, !c.tokenExp.IsZero()
}

// apiError is a non-2xx response that did not map to a sentinel.
type apiError struct {
	status int
	detail string
}

func (e *apiError) Error() string {
	if e.detail == "" {
		return fmt.Sprintf("server returned %d", e.status)
	}
	return fmt.Sprintf("server returned %d: %s", e.status, e.detail)
}

// statusOf returns the HTTP status behind err, or 0 if err did not come from
// a server response.
func statusOf(err error) int {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.status
	}
	return 0
}

func isUnauthorized(err error) bool {
	return errors.Is(err, store.ErrUnauthorized)
}

// do performs one round trip: JSON-encode body (if any), send, capture the
// session cookie, map failures, and JSON-decode into out (if any).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.captureSessionToken(ctx, resp)

	if resp.StatusCode >= 400 {
		detail := readDetail(resp.Body)
		if resp.StatusCode == http.StatusUnauthorized {
			c.invalidateSession(ctx)
			return fmt.Errorf("%w: %s", store.ErrUnauthorized, detail)
		}
		return &apiError{status: resp.StatusCode, detail: detail}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readDetail extracts the server's {"detail": "..."} error message.
func readDetail(r io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(raw))
}

// captureSessionToken records the expiry claim of a freshly issued session
// cookie. The token is not verified; only the server can do that.
func (c *Client) captureSessionToken(ctx context.Context, resp *http.Response) {
	for _, ck := range resp.Cookies() {
		if ck.Name != sessionCookie || ck.Value == "" {
			continue
		}
		claims := jwt.MapClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(ck.Value, claims); err != nil {
			c.log.Debug(ctx, "unparseable session token", "error", err)
			return
		}
		exp, err := claims.GetExpirationTime()
		if err != nil || exp == nil {
			return
		}
		c.mu.Lock()
		c.tokenExp = exp.Time
		c.mu.Unlock()
		return
	}
}

// invalidateSession drops the cached session snapshot after the server
// reported the credential invalid. In-flight calls are not cancelled; the
// UI reacts to the now-absent session on its own schedule.
func (c *Client) invalidateSession(ctx context.Context) {
	c.mu.Lock()
	c.tokenExp = time.Time{}
	c.mu.Unlock()

	if c.sessions == nil {
		return
	}
	if err := c.sessions.Clear(ctx); err != nil {
		c.log.Warn(ctx, "failed to clear session after auth loss", "error", err)
		return
	}
	c.log.Info(ctx, "session invalidated by server")
}

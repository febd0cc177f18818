// Package netclient wraps every call to the backend with the resilience
// policy the editor depends on: a fixed per-call timeout sized for AI-backed
// endpoints, bounded retries on timeout and unreachable conditions, an
// unconditional session purge on 401/403, response generation counters so
// stale replies are discarded, and single-flight suppression of duplicate AI
// requests. The document model is never rolled back because of a network
// failure; in-memory edits survive any save outcome.
package netclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-studio/internal/cache"
	"github.com/jonathan/resume-studio/internal/session"
)

const (
	// DefaultTimeout is the fixed per-call ceiling. It is sized for the AI
	// endpoints, which are far slower than the CRUD endpoints sharing this
	// client.
	DefaultTimeout = 60 * time.Second

	// DefaultAttempts bounds delivery tries: the first call plus two
	// retries. Retries add no delay beyond the timeout window itself.
	DefaultAttempts = 3
)

// Options configures a Client. Zero values take defaults.
type Options struct {
	Timeout  time.Duration
	Attempts int
	Logger   *log.Logger

	// OnSessionExpired runs after a 401/403 purged the session store. The
	// host uses it to return the user to the entry point; there is no
	// dismiss path.
	OnSessionExpired func()

	// Cache, when set, backs the stale-list fallback for ListResumes.
	Cache *cache.ListCache
}

// Client is the resilient backend client. All methods are safe for use from
// the host's single event timeline; the internal locks only guard against
// callbacks racing the accounting, never against concurrent model mutation.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions session.Store
	logger   *log.Logger
	opts     Options

	flight singleflight.Group

	mu   sync.Mutex
	gens map[string]uint64
}

// New builds a client for the backend at baseURL using the given session
// store for bearer credentials.
func New(baseURL string, sessions session.Store, opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Attempts == 0 {
		opts.Attempts = DefaultAttempts
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: opts.Timeout},
		sessions: sessions,
		logger:   logger,
		opts:     opts,
		gens:     make(map[string]uint64),
	}
}

// Generation is the monotonic tag distinguishing in-flight requests for one
// fetch slot. Responses carrying a superseded generation are discarded.
type Generation struct {
	Slot  string
	Value uint64
}

// BeginGeneration claims the next generation for a slot. Any response tagged
// with an earlier generation for the same slot is stale.
func (c *Client) BeginGeneration(slot string) Generation {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[slot]++
	return Generation{Slot: slot, Value: c.gens[slot]}
}

// Current reports whether a generation is still the latest for its slot.
func (c *Client) Current(g Generation) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[g.Slot] == g.Value
}

// do executes one JSON request with the retry and auth policy. A nil out
// skips response decoding.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return &Error{Category: CategoryDecode, Op: op, Cause: err}
		}
	}

	var lastErr error
	for attempt := 1; attempt <= c.opts.Attempts; attempt++ {
		resp, err := c.send(ctx, method, path, payload)
		if err != nil {
			if retryable(err) && attempt < c.opts.Attempts {
				c.logger.Warn("request failed, retrying", "op", op, "attempt", attempt, "err", err)
				lastErr = err
				continue
			}
			if retryable(err) {
				return &Error{Category: transportCategory(err), Op: op, Cause: err}
			}
			return &Error{Category: CategoryUnreachable, Op: op, Cause: err}
		}
		return c.finish(op, resp, out)
	}
	return &Error{Category: transportCategory(lastErr), Op: op, Cause: lastErr}
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachBearer(req)
	return c.http.Do(req)
}

// attachBearer adds the session credential when one exists. A missing
// session is logged but never blocks the call; the server's enforcement is
// authoritative.
func (c *Client) attachBearer(req *http.Request) {
	s, err := c.sessions.Current()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			c.logger.Warn("no session token, proceeding unauthenticated", "path", req.URL.Path)
		} else {
			c.logger.Error("session store read failed", "err", err)
		}
		return
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
}

// finish maps the response status and decodes the body.
func (c *Client) finish(op string, resp *http.Response, out any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.expireSession()
		return &Error{Category: CategoryAuth, Op: op, Status: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Category: statusCategory(resp.StatusCode), Op: op, Status: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Category: CategoryDecode, Op: op, Cause: err}
	}
	return nil
}

// expireSession purges cached credentials and notifies the host. This path
// is unconditional: any 401/403 ends the session.
func (c *Client) expireSession() {
	if err := c.sessions.Invalidate(); err != nil {
		c.logger.Error("failed to invalidate session", "err", err)
	}
	c.logger.Warn("session expired, credentials purged")
	if c.opts.OnSessionExpired != nil {
		c.opts.OnSessionExpired()
	}
}

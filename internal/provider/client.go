// Package provider is the thin HTTP client for the remote board API. It
// returns data or an error; it never substitutes fallback data itself. That
// decision belongs to the caller.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"jobdeck-engine/internal/config"
	"jobdeck-engine/internal/domain"
)

// ErrUnconfigured is returned when no base URL is set; callers treat it the
// same as an unreachable board.
var ErrUnconfigured = errors.New("provider: no base url configured")

type Client struct {
	base      string
	hc        *http.Client
	limiter   *HostLimiter
	retryMax  int
	retryBase time.Duration
	log       *slog.Logger
}

func New(cfg config.Config, log *slog.Logger) *Client {
	rps := cfg.Provider.RequestsPerSec
	if rps <= 0 {
		rps = 2
	}
	burst := cfg.Provider.Burst
	if burst <= 0 {
		burst = 4
	}
	retryBase := time.Duration(cfg.Provider.RetryBaseMS) * time.Millisecond
	if retryBase <= 0 {
		retryBase = 250 * time.Millisecond
	}
	return &Client{
		base:      cfg.Provider.BaseURL,
		hc:        &http.Client{Timeout: cfg.ProviderTimeout()},
		limiter:   NewHostLimiter(rps, burst),
		retryMax:  cfg.Provider.RetryMax,
		retryBase: retryBase,
		log:       log,
	}
}

// Board is the result of one full fetch cycle.
type Board struct {
	Jobs      []domain.Job
	Companies []domain.Company
}

func (c *Client) FetchJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.getJSON(ctx, "/jobs", &jobs); err != nil {
		return nil, fmt.Errorf("fetch jobs: %w", err)
	}
	for i := range jobs {
		jobs[i].Description = descriptionText(jobs[i].Description)
	}
	return jobs, nil
}

func (c *Client) FetchCompanies(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	if err := c.getJSON(ctx, "/companies", &companies); err != nil {
		return nil, fmt.Errorf("fetch companies: %w", err)
	}
	return companies, nil
}

// FetchBoard fetches jobs and companies concurrently. Either failing fails
// the whole fetch; partial boards are worse than the fallback set.
func (c *Client) FetchBoard(ctx context.Context) (Board, error) {
	var b Board
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		jobs, err := c.FetchJobs(gctx)
		if err != nil {
			return err
		}
		b.Jobs = jobs
		return nil
	})
	g.Go(func() error {
		companies, err := c.FetchCompanies(gctx)
		if err != nil {
			return err
		}
		b.Companies = companies
		return nil
	})

	if err := g.Wait(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// SubmitApplication posts an application to the remote API. An unreachable
// board surfaces as an error; the caller queues the application locally.
func (c *Client) SubmitApplication(ctx context.Context, a domain.Application) error {
	if err := c.postJSON(ctx, "/applications", a, nil); err != nil {
		return fmt.Errorf("submit application: %w", err)
	}
	return nil
}

// Login exchanges credentials for a session token at the remote API.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	req := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.postJSON(ctx, "/auth/login", req, &resp); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return resp.Token, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	if c.base == "" {
		return ErrUnconfigured
	}
	u := c.base + path

	var lastErr error
	for attempt := 0; attempt <= c.retryMax; attempt++ {
		if attempt > 0 {
			delay := c.retryBase << (attempt - 1)
			c.log.Warn("retrying board request",
				"attempt", attempt, "max", c.retryMax, "delay", delay, "url", u, "error", lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := c.limiter.WaitURL(ctx, u); err != nil {
			return err
		}

		lastErr = c.once(ctx, method, u, body, out)
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) once(ctx context.Context, method, u string, body []byte, out any) error {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 256))
		return &HTTPError{StatusCode: res.StatusCode, Err: fmt.Errorf("%s %s: %s", method, u, bytes.TrimSpace(b))}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == 429 || httpErr.StatusCode >= 500
	}
	// network-level failure
	return true
}

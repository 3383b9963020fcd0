// Package fetch retrieves the task-plan document from the remote endpoint.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pablasso/fieldplan/internal/logger"
	"github.com/pablasso/fieldplan/internal/plan"
)

// ErrFetchFailed wraps every transport failure: network errors, non-2xx
// responses, and bodies that cannot be decoded.
var ErrFetchFailed = errors.New("failed to load tasks")

// UserMessage is the fixed text shown when a fetch fails.
const UserMessage = "Failed to load tasks. Please try again later."

const requestIDHeader = "X-Request-ID"

// Fetcher yields the plan items of one task-plan read.
type Fetcher interface {
	Fetch(ctx context.Context) ([]plan.PlanItem, error)
}

// Options configures a Client.
type Options struct {
	Endpoint string
	Timeout  time.Duration
	Retries  int
	Logger   logger.Logger
}

// Client reads the task plan over HTTP.
type Client struct {
	http     *resty.Client
	endpoint string
	log      logger.Logger
}

// New creates a Client for the given endpoint.
func New(opts Options) (*Client, error) {
	if err := validateEndpoint(opts.Endpoint); err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logger.GetDefault()
	}

	httpClient := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(opts.Retries).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetLogger(restyLogger{log: log})
	httpClient.AddRetryCondition(retryCondition)

	return &Client{
		http:     httpClient,
		endpoint: opts.Endpoint,
		log:      log,
	}, nil
}

// Endpoint returns the URL the client reads from.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch performs one GET of the task-plan endpoint. A body that is valid JSON
// but not an array is logged and yields an empty slice without error.
func (c *Client) Fetch(ctx context.Context) ([]plan.PlanItem, error) {
	requestID := uuid.NewString()
	start := time.Now()
	c.log.Debug("fetching task plan", "endpoint", c.endpoint, "request_id", requestID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID).
		Get(c.endpoint)
	if err != nil {
		c.log.Error("task plan request failed", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if !resp.IsSuccess() {
		c.log.Error("task plan request returned an error status", "request_id", requestID, "status", resp.StatusCode())
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode())
	}

	items, err := plan.DecodePlanItems(resp.Body())
	if err != nil {
		if errors.Is(err, plan.ErrNotArray) {
			c.log.Warn("task plan is not an array; showing no tasks", "request_id", requestID, "error", err)
			return []plan.PlanItem{}, nil
		}
		c.log.Error("task plan could not be decoded", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	c.log.Debug("task plan fetched",
		"request_id", requestID,
		"items", len(items),
		"duration", time.Since(start).Round(time.Millisecond))
	return items, nil
}

// retryCondition retries network errors and 5xx responses. It only applies
// when retries are enabled.
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled)
	}
	if r == nil {
		return false
	}
	return r.StatusCode() >= 500
}

func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return errors.New("endpoint is required")
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint must have a host, got %q", endpoint)
	}
	return nil
}

// restyLogger routes resty's internal messages through our logger.
type restyLogger struct {
	log logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug(fmt.Sprintf(format, v...), "component", "resty")
}

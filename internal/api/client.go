package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config holds connection and client settings for the tracking server.
type Config struct {
	BaseURL   string
	TimeoutMs int
	LogCalls  bool

	// Calendar source toggles, passed through on planned-event fetches.
	IncludeGoogle  bool
	IncludeOutlook bool

	// Timezone is the IANA name used for local-day math; empty means the
	// process local zone.
	Timezone string

	// Device and Source tag entries created by this client.
	Device string
	Source string
}

// DefaultConfig returns a Config pointing at a local server.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "http://localhost:8000",
		TimeoutMs:      10000,
		IncludeGoogle:  true,
		IncludeOutlook: true,
		Device:         "cli",
		Source:         "weekgrid",
	}
}

// Client provides typed access to the tracking server's JSON API.
// Calls are fire-and-forget from the UI's perspective: there is no
// request cancellation beyond the context, and a stale response is
// superseded by the next full refresh rather than aborted.
type Client interface {
	// PlannedEventsRange fetches planned events for a local date range.
	PlannedEventsRange(ctx context.Context, startDay string, days int, includeGoogle, includeOutlook bool) ([]PlannedEventRecord, error)

	// TimeEntriesRange fetches logged entries for a local date range,
	// pre-split per local day.
	TimeEntriesRange(ctx context.Context, startDay string, days int) ([]LoggedEntryRecord, error)

	// QuickLog creates one logged entry and returns the authoritative record.
	QuickLog(ctx context.Context, req QuickLogRequest) (*TimeEntry, error)

	// UpdateEntry patches fields on an existing entry.
	UpdateEntry(ctx context.Context, id string, req UpdateEntryRequest) error

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, id string) error

	// Categories lists the selectable logging categories.
	Categories(ctx context.Context) ([]CategoryRecord, error)

	// Available checks whether the server is reachable.
	Available(ctx context.Context) bool
}

type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the given server.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) PlannedEventsRange(ctx context.Context, startDay string, days int, includeGoogle, includeOutlook bool) ([]PlannedEventRecord, error) {
	q := url.Values{}
	if startDay != "" {
		q.Set("start_day", startDay)
	}
	q.Set("days", strconv.Itoa(days))
	q.Set("include_google", strconv.FormatBool(includeGoogle))
	q.Set("include_outlook", strconv.FormatBool(includeOutlook))

	var out []PlannedEventRecord
	err := c.do(ctx, http.MethodGet, "/api/planned_events_range?"+q.Encode(), nil, &out)
	return out, err
}

func (c *httpClient) TimeEntriesRange(ctx context.Context, startDay string, days int) ([]LoggedEntryRecord, error) {
	q := url.Values{}
	if startDay != "" {
		q.Set("start_day", startDay)
	}
	q.Set("days", strconv.Itoa(days))

	var out []LoggedEntryRecord
	err := c.do(ctx, http.MethodGet, "/api/time_entries_range?"+q.Encode(), nil, &out)
	return out, err
}

func (c *httpClient) QuickLog(ctx context.Context, req QuickLogRequest) (*TimeEntry, error) {
	var out TimeEntry
	if err := c.do(ctx, http.MethodPost, "/api/quick_log", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) UpdateEntry(ctx context.Context, id string, req UpdateEntryRequest) error {
	return c.do(ctx, http.MethodPatch, "/api/time_entries/"+url.PathEscape(id), req, nil)
}

func (c *httpClient) DeleteEntry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/time_entries/"+url.PathEscape(id), nil, nil)
}

func (c *httpClient) Categories(ctx context.Context) ([]CategoryRecord, error) {
	var out []CategoryRecord
	err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out)
	return out, err
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/api/me", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// do issues one JSON request and decodes the response into out (if non-nil).
func (c *httpClient) do(ctx context.Context, method, path string, body, out any) error {
	start := time.Now()
	err := c.doOnce(ctx, method, path, body, out)

	c.observer.OnCallComplete(CallEvent{
		Method:    method,
		Endpoint:  endpointLabel(path),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return err
}

func (c *httpClient) doOnce(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if isConnectionError(err) {
			return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
		}
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	switch {
	case httpResp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case httpResp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, string(respBody))
	case httpResp.StatusCode != http.StatusOK:
		return fmt.Errorf("server returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// endpointLabel strips the query string and entry IDs so the observer
// sees stable endpoint names.
func endpointLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	const entries = "/api/time_entries/"
	if strings.HasPrefix(path, entries) && len(path) > len(entries) {
		return entries + "{id}"
	}
	return path
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrServerUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrBadRequest):
		return "BAD_REQUEST"
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

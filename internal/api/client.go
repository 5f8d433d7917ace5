package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ib-ingenieria/horas-cli/internal/logger"
)

// Client is a typed client for the hours/permissions REST backend. All
// persistence, authentication and aggregation live behind it; the client only
// normalizes request/response shapes and reports errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
}

// New creates a client for the given base URL with a fixed request timeout.
// There is no retry policy on top of the timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		validate:   validator.New(),
	}
}

// Error is a failed API call. Detail carries the server's error detail
// verbatim when the response body had one.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server error %d", e.Status)
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

// do performs a request and decodes the JSON response into out (skipped when
// out is nil). Non-2xx responses become *Error with the decoded detail.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && eb.Detail != "" {
			apiErr.Detail = eb.Detail
		}
		logger.Warn("API call failed", "method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// compositeSegment joins values into a single double-colon path segment, each
// part URL-encoded on its own.
func compositeSegment(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return strings.Join(escaped, "::")
}

// cleanStrings normalizes a raw catalog option list: drops nulls and empties,
// stringifies everything else, and deduplicates preserving order.
func cleanStrings(raw []any) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if v == nil {
			continue
		}
		var s string
		switch t := v.(type) {
		case string:
			s = t
		case float64:
			// JSON numbers; whole values render without a decimal point.
			if t == float64(int64(t)) {
				s = fmt.Sprintf("%d", int64(t))
			} else {
				s = fmt.Sprintf("%g", t)
			}
		default:
			s = fmt.Sprint(t)
		}
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

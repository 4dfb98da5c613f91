package facades

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/sbilibin2017/barterup-bff/internal/logger"
)

const userAgent = "barterup-bff/0.1"

// KeyKind selects which API key authenticates a request.
type KeyKind int

const (
	// KeyAnon sends the anonymous key as apikey only. Used for auth endpoints.
	KeyAnon KeyKind = iota
	// KeyService sends the service-role key as apikey and bearer token.
	KeyService
)

// Request describes a single call to the BaaS.
type Request struct {
	Method string
	URL    string
	Query  url.Values
	Body   any
	Key    KeyKind
	Prefer string
}

// Response is the raw answer of the BaaS.
type Response struct {
	StatusCode int
	Body       []byte
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("invalid json from supabase: %w", err)
	}
	return nil
}

// UpstreamError is a non-2xx answer of the BaaS.
type UpstreamError struct {
	StatusCode int
	Message    string // msg, message or error_description field of the body, if any
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("supabase error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("supabase error %d: %s", e.StatusCode, e.Body)
}

func newUpstreamError(status int, body []byte) *UpstreamError {
	e := &UpstreamError{StatusCode: status, Body: string(body)}

	var fields struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	if json.Unmarshal(body, &fields) == nil {
		switch {
		case fields.Msg != "":
			e.Message = fields.Msg
		case fields.Message != "":
			e.Message = fields.Message
		case fields.ErrorDescription != "":
			e.Message = fields.ErrorDescription
		}
	}
	return e
}

// SupabaseClient carries the BaaS base URL and keys. It is built once at
// startup and shared read-only by every component.
type SupabaseClient struct {
	baseURL        string
	anonKey        string
	serviceRoleKey string
	http           *http.Client
}

// NewSupabaseClient creates a client. A nil httpClient means http.DefaultClient.
func NewSupabaseClient(baseURL, anonKey, serviceRoleKey string, httpClient *http.Client) *SupabaseClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &SupabaseClient{
		baseURL:        strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		anonKey:        strings.TrimSpace(anonKey),
		serviceRoleKey: strings.TrimSpace(serviceRoleKey),
		http:           httpClient,
	}
}

// AuthURL returns the URL of an auth endpoint, e.g. AuthURL("signup").
func (c *SupabaseClient) AuthURL(path string) string {
	return c.baseURL + "/auth/v1/" + strings.TrimLeft(path, "/")
}

// RestURL returns the REST URL of a table.
func (c *SupabaseClient) RestURL(table string) string {
	return c.baseURL + "/rest/v1/" + table
}

// Do sends the request and returns an UpstreamError on any non-2xx status.
func (c *SupabaseClient) Do(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upErr := newUpstreamError(resp.StatusCode, resp.Body)
		logger.Log.Warnw("supabase request failed",
			"method", req.Method,
			"url", req.URL,
			"status", resp.StatusCode,
			"error", upErr.Message,
		)
		return nil, upErr
	}
	return resp, nil
}

// Ping queries the profiles table and reports the raw status and body.
// Non-2xx statuses are not errors here.
func (c *SupabaseClient) Ping(ctx context.Context) (int, string, error) {
	resp, err := c.send(ctx, Request{
		Method: http.MethodGet,
		URL:    c.RestURL("profiles"),
		Query:  url.Values{"limit": {"1"}},
		Key:    KeyService,
	})
	if err != nil {
		return 0, "", err
	}
	return resp.StatusCode, string(resp.Body), nil
}

func (c *SupabaseClient) send(ctx context.Context, req Request) (*Response, error) {
	target := req.URL
	if len(req.Query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode supabase request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build supabase request: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Prefer != "" {
		httpReq.Header.Set("Prefer", req.Prefer)
	}
	switch req.Key {
	case KeyService:
		httpReq.Header.Set("apikey", c.serviceRoleKey)
		httpReq.Header.Set("Authorization", "Bearer "+c.serviceRoleKey)
	default:
		httpReq.Header.Set("apikey", c.anonKey)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		logger.Log.Errorw("supabase request error", "method", req.Method, "url", req.URL, "error", err)
		return nil, fmt.Errorf("supabase request: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read supabase response: %w", err)
	}

	logger.Log.Debugw("supabase request",
		"method", req.Method,
		"url", req.URL,
		"status", httpResp.StatusCode,
		"response_size", len(raw),
	)

	return &Response{StatusCode: httpResp.StatusCode, Body: raw}, nil
}

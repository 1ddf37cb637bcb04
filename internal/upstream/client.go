package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"horplus-console/internal/metrics"
	"horplus-console/internal/models"

	"github.com/google/uuid"
)

// Client talks to the remote HorPlus API. It is the only way the console
// reads or writes dormitory data; nothing is persisted locally.
type Client struct {
	baseURL string
	httpc   *http.Client

	users         *UsersService
	rooms         *RoomsService
	repairs       *RepairsService
	announcements *AnnouncementsService
	bills         *BillsService
}

func New(baseURL string, timeout time.Duration) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
	c.users = &UsersService{c: c}
	c.rooms = &RoomsService{c: c}
	c.repairs = &RepairsService{c: c}
	c.announcements = &AnnouncementsService{c: c}
	c.bills = &BillsService{c: c}
	return c
}

func (c *Client) Users() *UsersService                 { return c.users }
func (c *Client) Rooms() *RoomsService                 { return c.rooms }
func (c *Client) Repairs() *RepairsService             { return c.repairs }
func (c *Client) Announcements() *AnnouncementsService { return c.announcements }
func (c *Client) Bills() *BillsService                 { return c.bills }

func (c *Client) BaseURL() string { return c.baseURL }

// Ping checks upstream reachability for health reporting.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "health", http.MethodGet, "/api/rooms", nil, nil, nil)
}

// LoginAdmin exchanges credentials for access to the dashboard.
func (c *Client) LoginAdmin(ctx context.Context, username, password string) (*models.LoginResult, error) {
	var out models.LoginResult
	req := models.LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, "login", http.MethodPost, "/api/login-admin", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Upload persists an image through the upstream multipart endpoint and
// returns the server path that records should reference.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", &TransportError{Err: err}
	}
	if err := mw.Close(); err != nil {
		return "", &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.roundTrip("upload", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", statusErrorFrom(resp)
	}

	var out models.UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &TransportError{Err: err}
	}
	return out.File.Path, nil
}

// do performs one JSON round trip. body and out may be nil.
func (c *Client) do(ctx context.Context, resource, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &TransportError{Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.roundTrip(resource, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusErrorFrom(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}
	// Some endpoints answer 2xx with an empty body (e.g. 204 deletes)
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

func (c *Client) roundTrip(resource string, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpc.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(resource, req.Method).
		Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, req.Method, "transport_error").Inc()
		return nil, &TransportError{Err: err}
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(resource, req.Method, fmt.Sprintf("%d", resp.StatusCode)).Inc()
	return resp, nil
}

// statusErrorFrom extracts the upstream error message; bodies vary between
// {"error": ...}, {"msg": ...} and {"message": ...} across endpoints.
func statusErrorFrom(resp *http.Response) *StatusError {
	se := &StatusError{Status: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return se
	}
	var envelope struct {
		Error   string `json:"error"`
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		switch {
		case envelope.Error != "":
			se.Message = envelope.Error
		case envelope.Msg != "":
			se.Message = envelope.Msg
		case envelope.Message != "":
			se.Message = envelope.Message
		}
	}
	return se
}

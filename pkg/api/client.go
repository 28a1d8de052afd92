package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/forecourt/forecourt-cli/pkg/models"
	"github.com/forecourt/forecourt-cli/pkg/settings"
)

const defaultTimeout = 15 * time.Second

// Client talks JSON-over-HTTP to the back-office backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:9080".
func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, defaultTimeout)
}

// NewClientWithTimeout creates a client with a custom request timeout.
func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchSettingsDocument retrieves the full settings document. Callers
// fall back to models.DefaultDocument() on error so the UI stays
// usable offline.
func (c *Client) FetchSettingsDocument(ctx context.Context) (*models.SettingsDocument, error) {
	var doc models.SettingsDocument
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// SaveSettingsSection persists the document tagged with the section
// that was edited and returns the canonical state from the server.
func (c *Client) SaveSettingsSection(ctx context.Context, doc *models.SettingsDocument, section settings.SectionID) (*models.SettingsDocument, error) {
	path := "/api/settings?section=" + url.QueryEscape(string(section))
	var canonical models.SettingsDocument
	if err := c.do(ctx, http.MethodPut, path, doc, &canonical); err != nil {
		return nil, err
	}
	return &canonical, nil
}

// AddCreditType is the best-effort single-item call for the credit type
// label set. A conflict from the backend comes back as ErrDuplicate.
func (c *Client) AddCreditType(ctx context.Context, label string) error {
	return c.postLabel(ctx, "/api/settings/credit-types", label)
}

// AddExpenseCategory is the best-effort single-item call for expense
// categories.
func (c *Client) AddExpenseCategory(ctx context.Context, label string) error {
	return c.postLabel(ctx, "/api/settings/expense-categories", label)
}

// AddCashMode is the best-effort single-item call for cash modes.
func (c *Client) AddCashMode(ctx context.Context, label string) error {
	return c.postLabel(ctx, "/api/settings/cash-modes", label)
}

// ListCreditors fetches the creditor directory.
func (c *Client) ListCreditors(ctx context.Context) ([]models.Creditor, error) {
	var creditors []models.Creditor
	if err := c.do(ctx, http.MethodGet, "/api/creditors", nil, &creditors); err != nil {
		return nil, err
	}
	return creditors, nil
}

// SalesSummary fetches the dashboard sales buckets for the last n days.
func (c *Client) SalesSummary(ctx context.Context, days int) ([]models.SalesPoint, error) {
	var points []models.SalesPoint
	path := "/api/sales/summary?days=" + strconv.Itoa(days)
	if err := c.do(ctx, http.MethodGet, path, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (c *Client) postLabel(ctx context.Context, path, label string) error {
	body := map[string]string{"label": label}
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// do performs one request and maps the response onto the error
// taxonomy: transport failure -> ConnectionError, 5xx -> ServerError,
// 409 -> ErrDuplicate, other 4xx -> ValidationError with the server's
// message verbatim.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return &ServerError{Status: resp.StatusCode}
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", path, ErrDuplicate)
	case resp.StatusCode >= 400:
		return &ValidationError{Message: readErrorMessage(resp.Body, resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readErrorMessage pulls the message out of an {"error": "..."} body,
// falling back to the status text.
func readErrorMessage(body io.Reader, status int) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return http.StatusText(status)
}

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kelsos/etherscan-tools/internal/config"
	"github.com/kelsos/etherscan-tools/internal/logger"
	"github.com/kelsos/etherscan-tools/internal/models"
)

// Doer issues a single HTTP request. *http.Client satisfies it; tests
// substitute a fake so no operation needs a real network boundary.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client translates typed operation calls into Etherscan GET requests and
// normalizes the response envelope. It holds only immutable configuration
// and the injected transport, so it is safe for concurrent use.
type Client struct {
	config    *config.Config
	transport Doer
}

// New creates a client backed by a plain http.Client. The per-request
// timeout comes from the configuration, not the transport.
func New(cfg *config.Config) *Client {
	return NewWithTransport(cfg, &http.Client{})
}

// NewWithTransport creates a client with a caller-supplied transport.
func NewWithTransport(cfg *config.Config, transport Doer) *Client {
	return &Client{config: cfg, transport: transport}
}

// Config returns the client's resolved configuration.
func (c *Client) Config() *config.Config {
	return c.config
}

const fallbackAPIMessage = "Etherscan API request failed"

// Upstream signals "nothing matched" through these envelope messages rather
// than an empty success. Matching is a case-insensitive substring test.
var emptyResultSentinels = []string{
	"no records found",
	"no transactions found",
}

func isEmptyResultMessage(msg string) bool {
	msg = strings.ToLower(msg)
	for _, sentinel := range emptyResultSentinels {
		if strings.Contains(msg, sentinel) {
			return true
		}
	}
	return false
}

// buildURL merges the base URL with the module/action pair and the
// per-operation query parameters. The chainid parameter accompanies every
// request; apikey is appended only when configured.
func (c *Client) buildURL(module, action string, params url.Values) (string, error) {
	u, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return "", invalidf("", "invalid base URL %q: %v", c.config.BaseURL, err)
	}

	query := u.Query()
	query.Set("chainid", c.config.ChainID)
	query.Set("module", module)
	query.Set("action", action)
	for key, values := range params {
		for _, value := range values {
			query.Set(key, value)
		}
	}
	if c.config.APIKey != "" {
		query.Set("apikey", c.config.APIKey)
	}

	u.RawQuery = query.Encode()
	return u.String(), nil
}

// get issues one GET request and normalizes the envelope. On success it
// returns the raw result payload together with the request URL, so callers
// can attach the URL to their own reshaping failures. When tolerateEmpty is
// set and the upstream message matches an empty-result sentinel, it returns
// a nil payload instead of an error so the caller can produce its empty
// value.
func (c *Client) get(ctx context.Context, module, action string, params url.Values, tolerateEmpty bool) (json.RawMessage, string, error) {
	requestURL, err := c.buildURL(module, action, params)
	if err != nil {
		return nil, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, requestURL, invalidf(requestURL, "error creating request: %v", err)
	}

	start := time.Now()
	logger.Debug("Starting GET request to %s", requestURL)

	resp, err := c.transport.Do(req)
	if err != nil {
		elapsed := time.Since(start)
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Error("Request to %s timed out after %v", requestURL, elapsed)
			return nil, requestURL, &Error{
				Kind:    KindHTTP,
				Message: fmt.Sprintf("request timed out after %s", c.config.Timeout),
				URL:     requestURL,
				Err:     err,
			}
		}
		logger.Error("Request to %s failed after %v: %v", requestURL, elapsed, err)
		return nil, requestURL, &Error{Kind: KindHTTP, Message: "request failed", URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, requestURL, &Error{Kind: KindHTTP, Message: "error reading response body", URL: requestURL, Err: err}
	}

	elapsed := time.Since(start)
	logger.Debug("Request to %s completed in %v with status %d", requestURL, elapsed, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, requestURL, &Error{
			Kind:    KindHTTP,
			Message: fmt.Sprintf("HTTP error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			URL:     requestURL,
			Details: string(body),
		}
	}

	var envelope models.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, requestURL, &Error{
			Kind:    KindInvalidResponse,
			Message: "error decoding response envelope",
			URL:     requestURL,
			Details: string(body),
			Err:     err,
		}
	}

	if envelope.OK() {
		return envelope.Result, requestURL, nil
	}

	if tolerateEmpty && isEmptyResultMessage(envelope.Message) {
		return nil, requestURL, nil
	}

	return nil, requestURL, &Error{
		Kind:    KindAPI,
		Message: apiErrorMessage(&envelope),
		URL:     requestURL,
		Details: string(body),
	}
}

// apiErrorMessage picks the most specific failure text the envelope offers:
// a non-blank string result, then the envelope message, then a fixed
// fallback.
func apiErrorMessage(envelope *models.Envelope) string {
	var result string
	if err := json.Unmarshal(envelope.Result, &result); err == nil {
		if msg := strings.TrimSpace(result); msg != "" {
			return msg
		}
	}
	if msg := strings.TrimSpace(envelope.Message); msg != "" {
		return msg
	}
	return fallbackAPIMessage
}

// decode unmarshals a result payload, classifying failures as
// invalid-response with the offending payload attached.
func decode(requestURL string, raw json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &Error{
			Kind:    KindInvalidResponse,
			Message: "unexpected result shape",
			URL:     requestURL,
			Details: string(raw),
			Err:     err,
		}
	}
	return nil
}

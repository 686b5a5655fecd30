package responder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
)

// maxReplyBytes caps how much of a responder answer is read.
const maxReplyBytes = 64 << 10

// StatusError reports a non-2xx answer from the responder.
type StatusError struct {
	StatusCode int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("responder returned status %d", e.StatusCode)
}

// Unwrap lets callers match ErrResponderUnreachable.
func (e StatusError) Unwrap() error {
	return domainErrors.ErrResponderUnreachable
}

// HTTPClient asks the backend responder for partner chat replies.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type request struct {
	Message string `json:"message"`
	Partner string `json:"partner"`
}

type response struct {
	Reply string `json:"reply"`
}

// NewHTTPClient creates responder client with provided timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse responder url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("responder url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Reply posts the message and returns the partner reply.
// Transport failures and non-2xx answers wrap ErrResponderUnreachable.
func (c *HTTPClient) Reply(ctx context.Context, message, partner string) (string, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/chat")

	payload, err := json.Marshal(request{Message: message, Partner: partner})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainErrors.ErrResponderUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", domainErrors.ErrResponderUnreachable, err)
	}
	if len(body) > maxReplyBytes {
		return "", fmt.Errorf("%w: reply exceeds %d bytes", domainErrors.ErrResponderUnreachable, maxReplyBytes)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("responder request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", StatusError{StatusCode: resp.StatusCode}
	}

	var data response
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("%w: decode reply: %v", domainErrors.ErrResponderUnreachable, err)
	}
	return data.Reply, nil
}

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wallet-dashboard/internal/domain"
)

// TokenSource yields the bearer token for the current session.
// session.Manager satisfies it.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client talks to the remote wallet service. It implements every gateway
// interface the usecase package depends on. Calls are never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *zap.Logger
}

// NewClient builds a Client for baseURL. A zero timeout means 30s.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		logger: logger,
	}
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// call issues one request. A nil body sends no payload; a nil out discards
// the response body. op names the operation in errors and logs.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("calling wallet service",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("wallet service unreachable",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("wallet service returned non-OK status",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(responseBody)))
		return statusError(op, resp.StatusCode, responseBody)
	}

	if out == nil || len(bytes.TrimSpace(responseBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(responseBody, out); err != nil {
		c.logger.Error("failed to decode wallet service response",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	return nil
}

// statusError maps a non-2xx response to a domain error. Only a string
// "detail" is surfaced; structured details fall back to the generic
// message.
func statusError(op string, status int, body []byte) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return &domain.AuthenticationError{
			Err: fmt.Errorf("%s returned status %d: %w", op, status, domain.ErrTokenRejected),
		}
	}
	remote := &domain.RemoteError{Op: op, StatusCode: status}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && len(eb.Detail) > 0 {
		var detail string
		if json.Unmarshal(eb.Detail, &detail) == nil {
			remote.Detail = strings.TrimSpace(detail)
		}
	}
	return remote
}

func isStatus(err error, status int) bool {
	var remote *domain.RemoteError
	return errors.As(err, &remote) && remote.StatusCode == status
}

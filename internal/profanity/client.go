// Package profanity wraps the remote bad-words filtering API. It is the
// only component that talks to the filter; callers get back either the
// censored text or a classified failure.
package profanity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"quest/internal/models"
)

const defaultMaxRetries = 3

// Doer issues a single HTTP request. *http.Client satisfies it; tests
// inject transports that fail a fixed number of times.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	endpoint   string
	apiKey     string
	doer       Doer
	maxRetries uint64
	newBackOff func() backoff.BackOff
}

type Option func(*Client)

// WithDoer replaces the underlying HTTP transport.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.doer = d }
}

// WithBackOff replaces the retry policy. Each Censor call gets a fresh
// backoff from the factory so calls do not share elapsed-time state.
func WithBackOff(f func() backoff.BackOff) Option {
	return func(c *Client) { c.newBackOff = f }
}

func NewClient(endpoint, apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		doer:       &http.Client{Timeout: 30 * time.Second},
		maxRetries: defaultMaxRetries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiError is the error body shape shared by the filter's 4xx and 5xx
// responses.
type apiError struct {
	Message string `json:"message"`
}

type badWord struct {
	Original    string `json:"original"`
	Word        string `json:"word"`
	Deviations  int64  `json:"deviations"`
	Info        int64  `json:"info"`
	ReplacedLen int64  `json:"replacedLen"`
}

type badWordsResponse struct {
	Content         string    `json:"content"`
	BadWordsTotal   int64     `json:"bad_words_total"`
	BadWordsList    []badWord `json:"bad_words_list"`
	CensoredContent string    `json:"censored_content"`
}

// Censor sends text to the filter and returns the censored version.
//
// Transport failures (connection errors, timeouts) are retried with
// exponential backoff up to maxRetries additional attempts; exhaustion is
// classified as an upstream transport failure. Any received HTTP response
// is definitive and never retried: 4xx and 5xx classify as upstream client
// and server failures carrying the status and the parsed error message.
// Empty text is returned unchanged without a remote call.
func (c *Client) Censor(ctx context.Context, text string) (string, error) {
	if text == "" {
		return text, nil
	}

	var resp *http.Response
	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(text))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Content-Type", "text/plain")

		resp, err = c.doer.Do(req)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(attempt, policy); err != nil {
		return "", models.UpstreamTransportError(fmt.Errorf("bad words request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", models.UpstreamTransportError(fmt.Errorf("reading bad words response: %w", err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		msg := errorMessage(body)
		if resp.StatusCode < http.StatusInternalServerError {
			return "", models.UpstreamClientError(resp.StatusCode, msg)
		}
		return "", models.UpstreamServerError(resp.StatusCode, msg)
	}

	var parsed badWordsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", models.UpstreamTransportError(fmt.Errorf("malformed bad words response: %w", err))
	}
	if parsed.CensoredContent == "" {
		// Non-empty input always censors to non-empty output; an empty
		// field means the body was not the success shape.
		return "", models.UpstreamTransportError(errors.New("malformed bad words response: missing censored_content"))
	}
	return parsed.CensoredContent, nil
}

// errorMessage pulls the message field out of an error body, falling back
// to the raw body when it does not parse. Either way the text is only ever
// logged, never surfaced to API callers.
func errorMessage(body []byte) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err != nil || e.Message == "" {
		return strings.TrimSpace(string(body))
	}
	return e.Message
}

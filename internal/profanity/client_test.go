package profanity_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quest/internal/models"
	"quest/internal/profanity"
)

// fakeDoer fails with a transport error a fixed number of times, then
// returns the configured response.
type fakeDoer struct {
	failures int
	status   int
	body     string

	calls     int
	lastInput string
	lastKey   string
}

func (d *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	d.calls++
	body, _ := io.ReadAll(req.Body)
	d.lastInput = string(body)
	d.lastKey = req.Header.Get("apikey")

	if d.calls <= d.failures {
		return nil, errors.New("connection reset")
	}
	return &http.Response{
		StatusCode: d.status,
		Body:       io.NopCloser(strings.NewReader(d.body)),
		Header:     http.Header{},
	}, nil
}

func newTestClient(d *fakeDoer) *profanity.Client {
	return profanity.NewClient("https://filter.example/bad_words", "test-key",
		profanity.WithDoer(d),
		profanity.WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} }),
	)
}

func kindOf(t *testing.T, err error) models.ErrorKind {
	t.Helper()
	var e *models.Error
	require.ErrorAs(t, err, &e)
	return e.Kind
}

func TestCensorSuccess(t *testing.T) {
	doer := &fakeDoer{
		status: http.StatusOK,
		body:   `{"content":"a list with shit, you know","bad_words_total":1,"bad_words_list":[{"original":"shit","word":"shit","deviations":0,"info":2,"replacedLen":4}],"censored_content":"a list with ****, you know"}`,
	}
	client := newTestClient(doer)

	censored, err := client.Censor(context.Background(), "a list with shit, you know")
	require.NoError(t, err)
	assert.Equal(t, "a list with ****, you know", censored)
	assert.Equal(t, 1, doer.calls)
	assert.Equal(t, "a list with shit, you know", doer.lastInput)
	assert.Equal(t, "test-key", doer.lastKey)
}

func TestCensorEmptyTextSkipsRemoteCall(t *testing.T) {
	doer := &fakeDoer{status: http.StatusOK}
	client := newTestClient(doer)

	censored, err := client.Censor(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", censored)
	assert.Equal(t, 0, doer.calls)
}

func TestCensorClientError(t *testing.T) {
	doer := &fakeDoer{
		status: http.StatusUnprocessableEntity,
		body:   `{"message":"content too long"}`,
	}
	client := newTestClient(doer)

	_, err := client.Censor(context.Background(), "some text")
	var e *models.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, models.KindUpstreamClient, e.Kind)
	assert.Equal(t, http.StatusUnprocessableEntity, e.Status)
	assert.Equal(t, "content too long", e.Message)
	// A definitive response is never retried.
	assert.Equal(t, 1, doer.calls)
}

func TestCensorServerError(t *testing.T) {
	doer := &fakeDoer{
		status: http.StatusBadGateway,
		body:   `{"message":"upstream exploded"}`,
	}
	client := newTestClient(doer)

	_, err := client.Censor(context.Background(), "some text")
	var e *models.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, models.KindUpstreamServer, e.Kind)
	assert.Equal(t, http.StatusBadGateway, e.Status)
	assert.Equal(t, "upstream exploded", e.Message)
	assert.Equal(t, 1, doer.calls)
}

func TestCensorMalformedSuccessBody(t *testing.T) {
	doer := &fakeDoer{status: http.StatusOK, body: `not json at all`}
	client := newTestClient(doer)

	_, err := client.Censor(context.Background(), "some text")
	assert.Equal(t, models.KindUpstreamTransport, kindOf(t, err))
	assert.Equal(t, 1, doer.calls)
}

func TestCensorMissingCensoredContent(t *testing.T) {
	doer := &fakeDoer{status: http.StatusOK, body: `{"message":"looks like an error body"}`}
	client := newTestClient(doer)

	_, err := client.Censor(context.Background(), "some text")
	assert.Equal(t, models.KindUpstreamTransport, kindOf(t, err))
}

func TestCensorRetriesTransportFailures(t *testing.T) {
	doer := &fakeDoer{
		failures: 3,
		status:   http.StatusOK,
		body:     `{"censored_content":"clean text"}`,
	}
	client := newTestClient(doer)

	censored, err := client.Censor(context.Background(), "clean text")
	require.NoError(t, err)
	assert.Equal(t, "clean text", censored)
	// Initial attempt plus three retries.
	assert.Equal(t, 4, doer.calls)
}

func TestCensorExhaustsRetries(t *testing.T) {
	doer := &fakeDoer{failures: 10, status: http.StatusOK}
	client := newTestClient(doer)

	_, err := client.Censor(context.Background(), "some text")
	assert.Equal(t, models.KindUpstreamTransport, kindOf(t, err))
	assert.Equal(t, 4, doer.calls)
}

func TestCensorCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doer := &fakeDoer{failures: 10}
	client := newTestClient(doer)

	_, err := client.Censor(ctx, "some text")
	assert.Equal(t, models.KindUpstreamTransport, kindOf(t, err))
	// The backoff policy stops scheduling attempts once the context is
	// cancelled rather than burning through the retry budget.
	assert.LessOrEqual(t, doer.calls, 1)
}

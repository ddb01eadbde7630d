package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
)

// ErrNotAvailable means the requested document does not exist (or is not in the offline cache).
var ErrNotAvailable = errors.New("document not available")

// StatusError is a non-200 response other than not-found.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch %s, status code: %d", e.URL, e.StatusCode)
}

// Options configures retries and the details page location.
type Options struct {
	DetailsURL    string // fmt template taking the source ID
	RetryAttempts uint
	RetryDelay    time.Duration
	Timeout       time.Duration
}

type Fetcher struct {
	client     *http.Client
	detailsURL string
	attempts   uint
	delay      time.Duration
}

func NewFetcher(opts Options) *Fetcher {
	if opts.RetryAttempts == 0 {
		opts.RetryAttempts = 1
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Fetcher{
		client:     &http.Client{Timeout: opts.Timeout},
		detailsURL: opts.DetailsURL,
		attempts:   opts.RetryAttempts,
		delay:      opts.RetryDelay,
	}
}

// DocumentURL is the details page URL for a source ID.
func (f *Fetcher) DocumentURL(id string) string {
	return fmt.Sprintf(f.detailsURL, id)
}

// GetDocument returns the raw details page for a source ID.
func (f *Fetcher) GetDocument(ctx context.Context, id string) (string, error) {
	body, err := f.GetBytes(ctx, f.DocumentURL(id))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetBytes fetches url, retrying transport failures and unexpected statuses.
// 404 and 410 are reported as ErrNotAvailable without retrying.
func (f *Fetcher) GetBytes(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			b, err := f.get(ctx, url)
			if err != nil {
				return err
			}
			body = b
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(f.attempts),
		retry.Delay(f.delay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, ErrNotAvailable)
		}),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusGone:
		return nil, fmt.Errorf("%s: %w", url, ErrNotAvailable)
	default:
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return bodyBytes, nil
}

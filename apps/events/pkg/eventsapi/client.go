package eventsapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

var (
	ErrNotFound    = errors.New("event not found")
	ErrFetchFailed = errors.New("failed to fetch events")
)

type StatusError struct {
	StatusCode int
}

func (err StatusError) Error() string {
	return fmt.Sprintf("unexpected status from events API: %d", err.StatusCode)
}

type client struct {
	logger  *slog.Logger
	baseURL string
	http    *http.Client
}

// New returns a Client for the events API rooted at baseURL. A zero timeout
// leaves requests unbounded.
func New(logger *slog.Logger, baseURL string, timeout time.Duration) Client {
	return client{
		logger:  logger,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

func (client client) sendRequest(
	ctx context.Context,
	endpoint string,
	query string,
	dst any,
) error {
	u, err := url.Parse(fmt.Sprintf("%s/%s", client.baseURL, endpoint))
	if err != nil {
		return err
	}

	u.RawQuery = query

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	client.logger.Debug("fetching from events API", slog.String("url", u.String()))

	res, err := client.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, res.Body)
		return StatusError{StatusCode: res.StatusCode}
	}

	// unknown fields are tolerated, the API owns the schema
	return httptools.ReadJSON(res.Body, dst)
}

// Package gphotos provides an HTTP client for the Google Photos Library API
// covering album listing, album creation, and batched media uploads.
package gphotos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://photoslibrary.googleapis.com/v1"

	// MaxPageSize is the API limit for the albums listing endpoint. It is
	// unrelated to the batchCreate limit even though both are currently 50.
	MaxPageSize = 50
)

// Album represents a Google Photos album.
type Album struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	ProductURL      string `json:"productUrl"`
	MediaItemsCount string `json:"mediaItemsCount"`
}

// APIError reports a response outside the [200,300) range. The client never
// retries; callers decide what a failed call means for the run.
type APIError struct {
	Verb       string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gphotos: %s %s: unexpected status %d: %s", e.Verb, e.Path, e.StatusCode, e.Body)
}

// Client handles interaction with the Google Photos API. It holds one
// authenticated session for its lifetime; construct it once per run and pass
// it to whatever needs remote access.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a Google Photos API client on top of an authenticated
// HTTP client (see commands.GetAuthenticatedClient). A nil limiter disables
// rate limiting.
func NewClient(httpClient *http.Client, limiter *rate.Limiter, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
	}
}

// call performs one API request. Responses outside [200,300) are drained,
// closed, and returned as an *APIError; the caller owns the body otherwise.
func (c *Client) call(ctx context.Context, verb, path string, body io.Reader, header http.Header) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter before %s %s: %w", verb, path, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, verb, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request %s %s: %w", verb, path, err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", verb, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			errBody = []byte("(failed to read response body)")
		}
		return nil, &APIError{
			Verb:       verb,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(errBody)),
		}
	}

	c.logger.Debug("request succeeded",
		slog.String("verb", verb),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))
	return resp, nil
}

// ListAlbums returns every album in the account, paging through the listing
// endpoint in server order. A page shorter than pageSize signals
// end-of-results. pageSize must be in [1,50].
func (c *Client) ListAlbums(ctx context.Context, excludeNonAppCreated bool, pageSize int) ([]Album, error) {
	if pageSize < 1 || pageSize > MaxPageSize {
		return nil, fmt.Errorf("page size %d outside [1,%d]", pageSize, MaxPageSize)
	}

	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("excludeNonAppCreatedData", strconv.FormatBool(excludeNonAppCreated))

	var albums []Album
	for {
		resp, err := c.call(ctx, http.MethodGet, "/albums?"+params.Encode(), nil, nil)
		if err != nil {
			return nil, err
		}

		var result struct {
			Albums        []Album `json:"albums"`
			NextPageToken string  `json:"nextPageToken"`
		}
		err = json.NewDecoder(resp.Body).Decode(&result)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode albums page: %w", err)
		}

		albums = append(albums, result.Albums...)
		if len(result.Albums) < pageSize || result.NextPageToken == "" {
			break
		}
		params.Set("pageToken", result.NextPageToken)
	}

	return albums, nil
}

// CreateAlbum creates a new album. The server is authoritative for the final
// id and title (titles may be normalized server-side).
func (c *Client) CreateAlbum(ctx context.Context, title string) (*Album, error) {
	reqBody, err := json.Marshal(map[string]any{
		"album": map[string]string{"title": title},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create album request: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	resp, err := c.call(ctx, http.MethodPost, "/albums", bytes.NewReader(reqBody), header)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var album Album
	if err := json.NewDecoder(resp.Body).Decode(&album); err != nil {
		return nil, fmt.Errorf("failed to decode created album: %w", err)
	}
	return &album, nil
}

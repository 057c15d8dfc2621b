package bunny

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bunny-video/domain/dto"
	"bunny-video/domain/model"
	"bunny-video/domain/repository"
	"bunny-video/infrastructure/logger"

	"github.com/google/go-querystring/query"
)

const (
	// RequestTimeout bounds every call to the Stream API.
	RequestTimeout = 20 * time.Second

	MinPageSize = 1
	MaxPageSize = 100
)

// Client calls the Bunny Stream API
type Client struct {
	apiBase    string
	userAgent  string
	httpClient *http.Client
}

// Config represents Stream client configuration
type Config struct {
	APIBase string
	Version string
	SiteURL string
}

// NewStreamClient creates a new Stream API client
func NewStreamClient(config Config) repository.IBunnyStream {
	return &Client{
		apiBase:    strings.TrimSuffix(config.APIBase, "/"),
		userAgent:  fmt.Sprintf("bunny-video/%s; %s", config.Version, config.SiteURL),
		httpClient: &http.Client{Timeout: RequestTimeout},
	}
}

// ClampPage floors page to 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampPageSize keeps pageSize within [MinPageSize, MaxPageSize].
func ClampPageSize(pageSize int) int {
	if pageSize < MinPageSize {
		return MinPageSize
	}
	if pageSize > MaxPageSize {
		return MaxPageSize
	}
	return pageSize
}

// ListVideos handles GET /library/{libraryId}/videos. It makes a single attempt.
func (c *Client) ListVideos(ctx context.Context, creds model.Credentials, page, pageSize int, search string) (dto.RawVideoList, error) {
	if !creds.Configured() {
		return nil, model.ErrConfigurationMissing
	}

	params, err := query.Values(dto.VideoListQuery{
		Page:         ClampPage(page),
		ItemsPerPage: ClampPageSize(pageSize),
		OrderBy:      "date",
		Search:       search,
	})
	if err != nil {
		return nil, fmt.Errorf("encode video list query: %w", err)
	}
	endpoint := fmt.Sprintf("%s/library/%d/videos?%s", c.apiBase, creds.LibraryID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if creds.AccessKey != "" {
		req.Header.Set("AccessKey", creds.AccessKey)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrTransport, err)
	}
	defer resp.Body.Close()

	logger.GetLogger().WithFields(map[string]interface{}{
		"libraryId": creds.LibraryID,
		"status":    resp.StatusCode,
		"elapsed":   time.Since(started).String(),
	}).Debug("Stream list videos")

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &model.RemoteHTTPError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrTransport, err)
	}
	var data dto.RawVideoList
	if err := json.Unmarshal(body, &data); err != nil || data == nil {
		return nil, model.ErrMalformedResponse
	}
	return data, nil
}

// Package tracker fetches backlog snapshots from a Jira Cloud project and
// public-holiday calendars from the Nager.Date API.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bvanleeuwen/specsheet/internal/config"
	"github.com/bvanleeuwen/specsheet/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// pageSize is the Jira search page size.
	pageSize = 100

	// requestsPerMinute stays well under Jira Cloud's burst limits.
	requestsPerMinute = 300

	defaultTimeout = 30 * time.Second
)

var (
	ErrUnauthorized = errors.New("tracker: unauthorized")
	ErrRateLimited  = errors.New("tracker: rate limited")
	ErrNotFound     = errors.New("tracker: not found")
)

// Client talks to the Jira Cloud REST API with basic auth and a local
// rate limiter.
type Client struct {
	cfg        config.Tracker
	httpClient *http.Client
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// NewClient creates a Jira client from tracker settings.
func NewClient(cfg config.Tracker, log zerolog.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), 10),
		log:     log.With().Str("component", "tracker").Logger(),
	}
}

// FetchBacklog pulls every issue of the configured project, following
// pagination until the reported total is reached. Issue order follows the
// project's rank so the scheduler consumes the backlog in board order.
func (c *Client) FetchBacklog(ctx context.Context) (domain.Backlog, error) {
	jql := fmt.Sprintf("project = %q", c.cfg.ProjectKey)
	if c.cfg.FixVersion != "" {
		jql += fmt.Sprintf(" AND fixVersion = %q", c.cfg.FixVersion)
	}
	jql += " ORDER BY rank ASC"
	fields := "summary,labels,priority,parent," + c.cfg.PointsField

	var backlog domain.Backlog
	startAt := 0
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		page, err := c.searchPage(ctx, jql, fields, startAt)
		if err != nil {
			return nil, fmt.Errorf("searching issues at offset %d: %w", startAt, err)
		}

		for _, issue := range page.Issues {
			backlog = append(backlog, convertIssue(issue, c.cfg.PointsField))
		}

		c.log.Debug().
			Int("start_at", startAt).
			Int("page", len(page.Issues)).
			Int("total", page.Total).
			Msg("fetched backlog page")

		startAt += len(page.Issues)
		if startAt >= page.Total || len(page.Issues) == 0 {
			break
		}
	}

	c.log.Info().
		Str("project", c.cfg.ProjectKey).
		Int("issues", len(backlog)).
		Msg("backlog snapshot complete")
	return backlog, nil
}

func (c *Client) searchPage(ctx context.Context, jql, fields string, startAt int) (*searchResponse, error) {
	q := url.Values{}
	q.Set("jql", jql)
	q.Set("fields", fields)
	q.Set("startAt", strconv.Itoa(startAt))
	q.Set("maxResults", strconv.Itoa(pageSize))

	endpoint := c.cfg.BaseURL + "/rest/api/3/search?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.SetBasicAuth(c.cfg.Email, c.cfg.APIToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	var page searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &page, nil
}

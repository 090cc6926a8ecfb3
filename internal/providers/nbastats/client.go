package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stats-gateway/internal/providers"
)

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches rosters and game logs from stats.nba.com and serves the
// static team list from an embedded copy.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchTeams returns the static list of franchises. No network call is made.
func (c *Client) FetchTeams(ctx context.Context) ([]providers.TeamRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	teams, err := staticTeams()
	if err != nil {
		return nil, err
	}
	return append([]providers.TeamRecord(nil), teams...), nil
}

// FetchRoster retrieves the commonteamroster result set for a team and season.
func (c *Client) FetchRoster(ctx context.Context, teamID int, season string) ([]providers.RosterRecord, error) {
	q := url.Values{}
	q.Set("TeamID", strconv.Itoa(teamID))
	q.Set("Season", season)
	q.Set("LeagueID", leagueID)

	set, err := c.fetchResultSet(ctx, endpointRoster, q)
	if err != nil {
		return nil, err
	}
	return mapRoster(set), nil
}

// FetchGameLog retrieves the regular-season playergamelog result set, most recent game first.
func (c *Client) FetchGameLog(ctx context.Context, playerID int, season string) ([]providers.GameLogRecord, error) {
	q := url.Values{}
	q.Set("PlayerID", strconv.Itoa(playerID))
	q.Set("Season", season)
	q.Set("SeasonType", seasonTypeRegular)

	set, err := c.fetchResultSet(ctx, endpointGameLog, q)
	if err != nil {
		return nil, err
	}
	return mapGameLog(set), nil
}

func (c *Client) fetchResultSet(ctx context.Context, endpoint string, q url.Values) (resultSet, error) {
	req, err := c.buildRequest(ctx, endpoint, q)
	if err != nil {
		return resultSet{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return resultSet{}, fmt.Errorf("%s: %s: %w", providerName, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return resultSet{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    providerName + " rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resultSet{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload statsResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return resultSet{}, fmt.Errorf("%s: %s: decode: %w", providerName, endpoint, err)
	}
	if len(payload.ResultSets) == 0 {
		return resultSet{}, fmt.Errorf("%s: %s: response has no result sets", providerName, endpoint)
	}
	return payload.ResultSets[0], nil
}

func (c *Client) buildRequest(ctx context.Context, endpoint string, q url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = q.Encode()
	for k, v := range requestHeaders {
		req.Header.Set(k, v)
	}
	return req, nil
}

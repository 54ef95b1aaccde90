// Package scholar fetches public citation statistics from a scholar
// profile page. Best-effort: the dashboard only caches whatever the page
// yields.
package scholar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
)

// Stats is a point-in-time snapshot of profile metrics.
type Stats struct {
	Citations int
	HIndex    int
	I10Index  int
}

// Fetcher retrieves stats for a profile URL. The HTTP implementation is
// the default; tests substitute their own.
type Fetcher interface {
	Fetch(ctx context.Context, profileURL string) (Stats, error)
}

// Client scrapes the profile metrics table. The zero value uses
// http.DefaultClient.
type Client struct {
	HTTPClient *http.Client
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// The metrics table renders each number inside a gsc_rsb_std cell, in the
// order citations (all/recent), h-index (all/recent), i10-index
// (all/recent). We take the "all" column.
var statCellPattern = regexp.MustCompile(`gsc_rsb_std">(\d+)<`)

// Fetch downloads the profile page and extracts the statistics. Errors are
// surfaced so the caller can decide to keep the previous snapshot.
func (c *Client) Fetch(ctx context.Context, profileURL string) (Stats, error) {
	if profileURL == "" {
		return Stats{}, errors.New("scholar: no profile URL configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("scholar: creating request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return Stats{}, fmt.Errorf("scholar: profile request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Stats{}, fmt.Errorf("scholar: profile fetch returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return Stats{}, fmt.Errorf("scholar: reading profile page: %w", err)
	}
	return parseStats(body)
}

func parseStats(page []byte) (Stats, error) {
	matches := statCellPattern.FindAllSubmatch(page, -1)
	if len(matches) == 0 {
		return Stats{}, errors.New("scholar: no statistics found on profile page")
	}

	values := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(string(m[1]))
		if err != nil {
			continue
		}
		values = append(values, n)
	}

	stats := Stats{}
	// Cells come in all/recent pairs; take every other one.
	if len(values) > 0 {
		stats.Citations = values[0]
	}
	if len(values) > 2 {
		stats.HIndex = values[2]
	}
	if len(values) > 4 {
		stats.I10Index = values[4]
	}
	return stats, nil
}

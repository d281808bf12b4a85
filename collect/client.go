// Package collect gathers labeled video metadata: a YouTube Data API v3
// client for query-driven collection, a watch-page fallback for explicit
// video IDs, and a raw-fetch cache so interrupted runs resume without
// refetching.
package collect

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	apiBase            = "https://www.googleapis.com/youtube/v3"
	watchBase          = "https://www.youtube.com/watch?v="
	maxDescriptionLen  = 500
	defaultHTTPTimeout = 10 * time.Second
)

// one request per 100ms against the API quota
var apiLimit = rate.Every(100 * time.Millisecond)

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`(?:embed/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`(?:youtu\.be/)([0-9A-Za-z_-]{11})`),
}

// ExtractVideoID pulls the 11-character video ID out of any YouTube URL
// form, or returns "" if none matches.
func ExtractVideoID(rawURL string) string {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(rawURL); len(m) >= 2 {
			return m[1]
		}
	}
	return ""
}

// Snippet is the per-video metadata the collector keeps.
type Snippet struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Channel     string `json:"channel,omitempty"`
	URL         string `json:"url"`
}

// Client talks to the YouTube Data API and the public watch pages.
type Client struct {
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter

	// baseURL and watchURL are overridable for tests
	baseURL  string
	watchURL string
}

// NewClient returns a collector client. An empty apiKey disables Search;
// watch-page fetches still work.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:   apiKey,
		http:     &http.Client{Timeout: defaultHTTPTimeout},
		limiter:  rate.NewLimiter(apiLimit, 1),
		baseURL:  apiBase,
		watchURL: watchBase,
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search runs one search.list call and returns the video snippets in
// relevance order. Descriptions are truncated to the length the
// downstream pipeline keeps.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Snippet, error) {
	if c.apiKey == "" {
		return nil, errors.New("no API key configured")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("order", "relevance")
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "building search request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "searching %q", query)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := ioutil.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Errorf("search %q: status %d: %s", query, resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrapf(err, "decoding search response for %q", query)
	}

	snippets := make([]Snippet, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID == "" {
			continue
		}
		snippets = append(snippets, Snippet{
			VideoID:     item.ID.VideoID,
			Title:       item.Snippet.Title,
			Description: truncate(item.Snippet.Description, maxDescriptionLen),
			Channel:     item.Snippet.ChannelTitle,
			URL:         watchBase + item.ID.VideoID,
		})
	}
	return snippets, nil
}

var (
	titleRE = regexp.MustCompile(`<title>(.*?)</title>`)
	descRE  = regexp.MustCompile(`"shortDescription":"([^"]*)"`)
)

// FetchWatchPage scrapes title and short description from the public
// watch page for one video ID. It needs no API key but sees only what
// the page embeds.
func (c *Client) FetchWatchPage(ctx context.Context, videoID string) (*Snippet, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	pageURL := c.watchURL + videoID
	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building watch page request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", videoID)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return nil, errors.Wrapf(err, "reading watch page for %s", videoID)
	}

	var title string
	if m := titleRE.FindSubmatch(body); len(m) >= 2 {
		title = strings.TrimSpace(strings.Replace(string(m[1]), " - YouTube", "", 1))
	}
	var description string
	if m := descRE.FindSubmatch(body); len(m) >= 2 {
		description = string(m[1])
	}

	return &Snippet{
		VideoID:     videoID,
		Title:       title,
		Description: truncate(description, maxDescriptionLen),
		URL:         watchBase + videoID,
	}, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

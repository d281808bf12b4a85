package collect

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/studytube/studytube/videos"
)

// Collector drives a labeling run: search each query, label the results
// by which list the query came from, and record raw fetches in the
// cache when one is attached.
type Collector struct {
	Client *Client
	Cache  *RawCache // optional
}

// Collect fetches up to countPerQuery videos for every query in both
// lists. Failed queries are logged and skipped; a run only fails
// outright when nothing could be fetched at all.
func (c *Collector) Collect(ctx context.Context, q Queries, countPerQuery int) ([]videos.Video, error) {
	var out []videos.Video
	seen := make(map[string]bool)

	collect := func(queries []string, label int) {
		for _, query := range queries {
			snippets, err := c.Client.Search(ctx, query, countPerQuery)
			if err != nil {
				log.Printf("Error fetching %q: %v", query, err)
				continue
			}
			for _, s := range snippets {
				if seen[s.VideoID] {
					continue
				}
				seen[s.VideoID] = true
				if c.Cache != nil {
					snippet := s
					if err := c.Cache.Put(&snippet); err != nil {
						log.Printf("Error caching %s: %v", s.VideoID, err)
					}
				}
				out = append(out, videos.Video{
					VideoID:     s.VideoID,
					Title:       s.Title,
					Description: s.Description,
					Label:       label,
					URL:         s.URL,
				})
			}
		}
	}

	collect(q.Educational, videos.LabelEducational)
	collect(q.Entertainment, videos.LabelEntertainment)

	if len(out) == 0 {
		return nil, errors.New("no videos collected")
	}
	return out, nil
}

// FetchByID resolves one explicit video URL or ID via the watch page,
// consulting the cache first.
func (c *Collector) FetchByID(ctx context.Context, urlOrID string) (*Snippet, error) {
	videoID := ExtractVideoID(urlOrID)
	if videoID == "" {
		videoID = urlOrID
	}

	if c.Cache != nil {
		if cached, err := c.Cache.Get(videoID); err == nil && cached != nil {
			return cached, nil
		}
	}

	s, err := c.Client.FetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if c.Cache != nil {
		if err := c.Cache.Put(s); err != nil {
			log.Printf("Error caching %s: %v", videoID, err)
		}
	}
	return s, nil
}

// templateRows seed a fresh labeled CSV with one example per class.
var templateRows = []videos.Video{
	{
		VideoID:     "dQw4w9WgXcQ",
		Title:       "Python Tutorial for Beginners",
		Description: "Learn Python programming from scratch",
		Label:       videos.LabelEducational,
		URL:         "https://youtube.com/watch?v=dQw4w9WgXcQ",
	},
	{
		VideoID:     "example2",
		Title:       "Funny Cat Compilation",
		Description: "Best funny cat videos of 2024",
		Label:       videos.LabelEntertainment,
		URL:         "https://youtube.com/watch?v=example2",
	},
}

// WriteTemplateCSV creates a starter labeled CSV for manual entry. An
// existing file is left alone so hand-entered rows are never clobbered.
func WriteTemplateCSV(path string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.Wrapf(err, "creating dir for %s", path)
	}
	if err := videos.WriteCSV(path, templateRows); err != nil {
		return false, err
	}
	return true, nil
}

package collect

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

// RawCache records fetched snippets keyed by video ID so an interrupted
// collection run can resume without spending API quota on videos it
// already has.
type RawCache struct {
	db *leveldb.DB
}

// OpenRawCache opens (or creates) the cache at dir.
func OpenRawCache(dir string) (*RawCache, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "opening raw cache at %s", dir)
	}
	return &RawCache{db: db}, nil
}

// Get returns the cached snippet for a video ID, or (nil, nil) on a miss.
func (c *RawCache) Get(videoID string) (*Snippet, error) {
	val, err := c.db.Get([]byte(videoID), nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s from raw cache", videoID)
	}

	var s Snippet
	if err := json.Unmarshal(val, &s); err != nil {
		return nil, errors.Wrapf(err, "unmarshaling cached %s", videoID)
	}
	return &s, nil
}

// Put stores a fetched snippet.
func (c *RawCache) Put(s *Snippet) error {
	val, err := json.Marshal(s)
	if err != nil {
		return errors.Wrapf(err, "marshaling %s for raw cache", s.VideoID)
	}
	if err := c.db.Put([]byte(s.VideoID), val, nil); err != nil {
		return errors.Wrapf(err, "writing %s to raw cache", s.VideoID)
	}
	return nil
}

// Close releases the underlying store.
func (c *RawCache) Close() error {
	return c.db.Close()
}

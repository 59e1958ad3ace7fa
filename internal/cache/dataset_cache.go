package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"poetiq/internal/model"
)

const datasetKey = "facilities"

// DatasetCache holds the loaded facility dataset in process so one request
// batch computes baseline and scores from a single snapshot instead of
// hitting the store per call.
type DatasetCache struct {
	cache *gocache.Cache
}

func NewDatasetCache(ttl time.Duration) *DatasetCache {
	return &DatasetCache{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *DatasetCache) Get() ([]model.Facility, bool) {
	if val, found := c.cache.Get(datasetKey); found {
		return val.([]model.Facility), true
	}
	return nil, false
}

func (c *DatasetCache) Set(facilities []model.Facility) {
	c.cache.Set(datasetKey, facilities, gocache.DefaultExpiration)
}

func (c *DatasetCache) Clear() {
	c.cache.Flush()
}

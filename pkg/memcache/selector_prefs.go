// Package memcache keeps small per-user state that outlives a single
// request but is not worth a table.
package memcache

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// SelectorFilters are the catalog filters a user last picked in a selector.
type SelectorFilters struct {
	CountryID string `json:"country_id,omitempty"`
	RegionID  string `json:"region_id,omitempty"`
	CityID    string `json:"city_id,omitempty"`
	Brand     string `json:"brand,omitempty"`
}

// SelectorPreferences remembers filters per user and selector kind. It is
// best effort: a failed read behaves like a miss and a failed write is
// logged and dropped.
type SelectorPreferences interface {
	Get(ctx context.Context, owner, kind string) (SelectorFilters, bool)
	Set(ctx context.Context, owner, kind string, f SelectorFilters)
}

// MemoryPreferences keeps filters in process; expired keys are swept by the
// cache janitor.
type MemoryPreferences struct {
	data *cache.Cache
}

func NewMemoryPreferences(ttl time.Duration) *MemoryPreferences {
	if ttl <= 0 {
		return &MemoryPreferences{data: cache.New(cache.NoExpiration, 0)}
	}
	return &MemoryPreferences{data: cache.New(ttl, ttl)}
}

func prefKey(owner, kind string) string {
	return "selector:prefs:" + owner + ":" + kind
}

func (s *MemoryPreferences) Set(_ context.Context, owner, kind string, f SelectorFilters) {
	s.data.SetDefault(prefKey(owner, kind), f)
}

func (s *MemoryPreferences) Get(_ context.Context, owner, kind string) (SelectorFilters, bool) {
	v, ok := s.data.Get(prefKey(owner, kind))
	if !ok {
		return SelectorFilters{}, false
	}
	return v.(SelectorFilters), true
}

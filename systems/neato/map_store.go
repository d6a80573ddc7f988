package neato

import (
	"github.com/patrickmn/go-cache"
)

// IMapStore defines shared per-process map data storage.
type IMapStore interface {
	Get(serial string) (*MapData, bool)
	Set(serial string, data *MapData)
}

// go-cache backed store.
type mapStore struct {
	cache *cache.Cache
}

// NewMapStore constructs a new map data store.
// Entries never expire, every robots refresh overwrites them.
func NewMapStore() IMapStore {
	return &mapStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get returns map data of the robot.
func (s *mapStore) Get(serial string) (*MapData, bool) {
	data, ok := s.cache.Get(serial)
	if !ok {
		return nil, false
	}

	return data.(*MapData), true
}

// Set replaces map data of the robot.
func (s *mapStore) Set(serial string, data *MapData) {
	s.cache.Set(serial, data, cache.NoExpiration)
}

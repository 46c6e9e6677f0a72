package cache

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/domain/keys"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

type OneTimeGetter func() (interface{}, error)

// Service is an in-process json cache
type Service interface {
	// GetByFunc fills container from cache, falling back to getter and
	// caching whatever it returns
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl time.Duration
	Pfx string
	// SizeMB is the freecache allocation, in megabytes
	SizeMB int
}

func (cfg *ServiceConfig) key(key string) string {
	return keys.CacheKey(cfg.Pfx, key)
}

func marshal(value interface{}) ([]byte, error) {
	return json.Marshal(value)
}

func unmarshal(data []byte, container interface{}) error {
	return json.Unmarshal(data, container)
}

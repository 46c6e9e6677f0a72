package cache

import (
	"github.com/coocood/freecache"

	"github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/base/log"
)

type impl struct {
	cfg   ServiceConfig
	cache *freecache.Cache
}

// New creates a freecache backed Service
func New(cfg ServiceConfig) Service {
	if cfg.SizeMB <= 0 {
		cfg.SizeMB = 4
	}
	return &impl{
		cfg:   cfg,
		cache: freecache.NewCache(cfg.SizeMB * 1024 * 1024),
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	if err := im.Get(c, key, container); err == nil {
		return nil
	} else if err != ErrNotFound {
		return err
	}

	value, err := getter()
	if err != nil {
		return err
	}
	if err := im.Set(c, key, value); err != nil {
		c.WithFields(log.Fields{"key": key, "err": err}).Warn("cache.Set failed")
	}

	data, err := marshal(value)
	if err != nil {
		return err
	}
	return unmarshal(data, container)
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	data, err := im.cache.Get([]byte(im.cfg.key(key)))
	if err != nil {
		if err == freecache.ErrNotFound {
			return ErrNotFound
		}
		c.WithFields(log.Fields{"key": key, "err": err}).Error("cache.Get failed")
		return err
	}
	return unmarshal(data, container)
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	data, err := marshal(value)
	if err != nil {
		return err
	}
	if err := im.cache.Set([]byte(im.cfg.key(key)), data, int(im.cfg.Ttl.Seconds())); err != nil {
		c.WithFields(log.Fields{"key": key, "err": err}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(im.cfg.key(key)))
	return nil
}

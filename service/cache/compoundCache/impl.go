// Package compoundcache chains cache services. Reads walk the layers
// front to back and a hit warms every layer in front of it, writes
// and deletes go to all layers.
package compoundcache

import (
	"reflect"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/service/cache"
)

type impl struct {
	layers []cache.Service
}

func NewCompoundCache(layers []cache.Service) cache.Service {
	return &impl{layers: layers}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter cache.OneTimeGetter) error {
	switch err := im.Get(c, key, container); err {
	case nil:
		return nil
	case cache.ErrNotFound:
		// miss, fall through to the getter
	default:
		c.WithField("err", err).WithField("key", key).Error("Get failed")
		return err
	}

	val, err := getter()
	if err != nil {
		return err
	}

	if err := im.Set(c, key, val); err != nil {
		c.WithField("err", err).WithField("key", key).Error("Set failed")
	}

	reflect.ValueOf(container).Elem().Set(reflect.ValueOf(val).Elem())
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	for idx, layer := range im.layers {
		err := layer.Get(c, key, container)
		if err == cache.ErrNotFound {
			continue
		}
		if err != nil {
			return err
		}

		// warm the layers in front of the hit
		for _, front := range im.layers[:idx] {
			if err := front.Set(c, key, container); err != nil {
				return err
			}
		}
		return nil
	}
	return cache.ErrNotFound
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	for _, layer := range im.layers {
		if err := layer.Set(c, key, value); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	for _, layer := range im.layers {
		if err := layer.Del(c, key); err != nil {
			return err
		}
	}
	return nil
}

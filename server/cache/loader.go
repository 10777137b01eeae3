package cache

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"relview/logger"
	"relview/server/data"
	"relview/server/object/meta"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const KeyPrefix = "REL"

func NewClient(url string) (*redis.Client, error) {
	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrapf(err, "parse redis url")
	}
	return redis.NewClient(options), nil
}

//Loader reads records through redis, asking the source loader on a miss.
//Redis failures are logged and the source is asked instead.
type Loader struct {
	client *redis.Client
	source data.Loader
	ttl    time.Duration
}

func NewLoader(client *redis.Client, source data.Loader, ttl time.Duration) *Loader {
	return &Loader{client: client, source: source, ttl: ttl}
}

func Key(m *meta.Meta, key string, val interface{}) string {
	return strings.Join([]string{KeyPrefix, m.Name, key, fmt.Sprint(val)}, ":")
}

func CollectionKey(m *meta.Meta, key string, val interface{}) string {
	return Key(m, key, val) + ":all"
}

func (loader *Loader) Get(m *meta.Meta, key string, val interface{}) (map[string]interface{}, error) {
	var obj map[string]interface{}
	cacheKey := Key(m, key, val)
	if loader.read(cacheKey, &obj) {
		return obj, nil
	}
	obj, err := loader.source.Get(m, key, val)
	if err != nil {
		return nil, err
	}
	loader.write(cacheKey, obj)
	return obj, nil
}

func (loader *Loader) GetAll(m *meta.Meta, key string, val interface{}) ([]map[string]interface{}, error) {
	var objs []map[string]interface{}
	cacheKey := CollectionKey(m, key, val)
	if loader.read(cacheKey, &objs) && objs != nil {
		return objs, nil
	}
	objs, err := loader.source.GetAll(m, key, val)
	if err != nil {
		return nil, err
	}
	loader.write(cacheKey, objs)
	return objs, nil
}

//Invalidate drops every cached record of the object.
func (loader *Loader) Invalidate(m *meta.Meta) error {
	ctx := loader.client.Context()
	iter := loader.client.Scan(ctx, 0, strings.Join([]string{KeyPrefix, m.Name, "*"}, ":"), 100).Iterator()
	for iter.Next(ctx) {
		if err := loader.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (loader *Loader) read(cacheKey string, v interface{}) bool {
	payload, err := loader.client.Get(loader.client.Context(), cacheKey).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logger.Warn("Cache read of '%s' failed: %s", cacheKey, err)
		return false
	}
	if err := json.Unmarshal(payload, v); err != nil {
		logger.Warn("Cached value of '%s' is broken: %s", cacheKey, err)
		return false
	}
	return true
}

func (loader *Loader) write(cacheKey string, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		logger.Warn("Value of '%s' can't be cached: %s", cacheKey, err)
		return
	}
	if err := loader.client.Set(loader.client.Context(), cacheKey, payload, loader.ttl).Err(); err != nil {
		logger.Warn("Cache write of '%s' failed: %s", cacheKey, err)
	}
}

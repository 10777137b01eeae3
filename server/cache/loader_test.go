package cache_test

import (
	"time"

	"relview/server/cache"
	"relview/server/data"
	"relview/server/object/description"
	"relview/server/object/meta"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type countingLoader struct {
	data.Loader
	fetches int
}

func (loader *countingLoader) Get(m *meta.Meta, key string, val interface{}) (map[string]interface{}, error) {
	loader.fetches++
	return loader.Loader.Get(m, key, val)
}

func (loader *countingLoader) GetAll(m *meta.Meta, key string, val interface{}) ([]map[string]interface{}, error) {
	loader.fetches++
	return loader.Loader.GetAll(m, key, val)
}

var _ = Describe("Redis loader", func() {
	var (
		server *miniredis.Miniredis
		client *redis.Client
		source *countingLoader
		loader *cache.Loader
		person *meta.Meta
		pet    *meta.Meta
	)

	BeforeEach(func() {
		var err error
		server, err = miniredis.Run()
		Expect(err).To(BeNil())
		client, err = cache.NewClient("redis://" + server.Addr() + "/0")
		Expect(err).To(BeNil())

		person = &meta.Meta{MetaDescription: &description.MetaDescription{Name: "person", Key: "id"}}
		pet = &meta.Meta{MetaDescription: &description.MetaDescription{Name: "pet", Key: "id"}}
		memoryLoader := data.NewMemoryLoader()
		memoryLoader.Put(person, map[string]interface{}{"id": 1, "name": "Ann"})
		memoryLoader.Put(pet,
			map[string]interface{}{"id": 1, "owner": 1},
			map[string]interface{}{"id": 2, "owner": 1},
		)
		source = &countingLoader{Loader: memoryLoader}
		loader = cache.NewLoader(client, source, time.Minute)
	})

	AfterEach(func() {
		client.Close()
		server.Close()
	})

	It("asks the source once and then reads from redis", func() {
		obj, err := loader.Get(person, "id", 1)
		Expect(err).To(BeNil())
		Expect(obj).To(Equal(map[string]interface{}{"id": 1, "name": "Ann"}))

		obj, err = loader.Get(person, "id", 1)
		Expect(err).To(BeNil())
		Expect(obj).To(Equal(map[string]interface{}{"id": float64(1), "name": "Ann"}))

		Expect(source.fetches).To(Equal(1))
		Expect(server.Exists("REL:person:id:1")).To(BeTrue())
		Expect(server.TTL("REL:person:id:1")).To(Equal(time.Minute))
	})

	It("caches misses", func() {
		obj, err := loader.Get(person, "id", 2)
		Expect(err).To(BeNil())
		Expect(obj).To(BeNil())

		obj, err = loader.Get(person, "id", 2)
		Expect(err).To(BeNil())
		Expect(obj).To(BeNil())
		Expect(source.fetches).To(Equal(1))
	})

	It("caches collections apart from single records", func() {
		objs, err := loader.GetAll(pet, "owner", 1)
		Expect(err).To(BeNil())
		Expect(objs).To(HaveLen(2))

		objs, err = loader.GetAll(pet, "owner", 1)
		Expect(err).To(BeNil())
		Expect(objs).To(HaveLen(2))
		Expect(objs[1]["id"]).To(Equal(float64(2)))
		Expect(source.fetches).To(Equal(1))
		Expect(server.Exists("REL:pet:owner:1:all")).To(BeTrue())
	})

	It("invalidates the records of one object", func() {
		loader.Get(person, "id", 1)
		loader.GetAll(pet, "owner", 1)

		Expect(loader.Invalidate(person)).To(BeNil())
		Expect(server.Exists("REL:person:id:1")).To(BeFalse())
		Expect(server.Exists("REL:pet:owner:1:all")).To(BeTrue())
	})

	It("falls back to the source when redis is down", func() {
		server.Close()

		obj, err := loader.Get(person, "id", 1)
		Expect(err).To(BeNil())
		Expect(obj["name"]).To(Equal("Ann"))
	})

	It("ignores broken cached values", func() {
		server.Set("REL:person:id:1", "{broken")

		obj, err := loader.Get(person, "id", 1)
		Expect(err).To(BeNil())
		Expect(obj["name"]).To(Equal("Ann"))
		Expect(source.fetches).To(Equal(1))
	})
})

package serializer

import (
	"sync"

	"relview/server/association"
	"relview/server/data"
)

//Factory builds the serializer registered under a name for an object.
type Factory func(object interface{}, options map[string]interface{}, scope *Scope) (association.Serializer, error)

type Registry struct {
	mutex     sync.RWMutex
	factories map[string]Factory
}

//NewRegistry returns a registry holding the built-in "link" serializer.
func NewRegistry() *Registry {
	registry := &Registry{factories: make(map[string]Factory)}
	registry.Register(LinkSerializerName, NewLinkSerializer)
	return registry
}

func (registry *Registry) Register(name string, factory Factory) {
	registry.mutex.Lock()
	defer registry.mutex.Unlock()
	registry.factories[name] = factory
}

func (registry *Registry) Get(name string) Factory {
	registry.mutex.RLock()
	defer registry.mutex.RUnlock()
	return registry.factories[name]
}

//Scope is shared by every serializer of one render.
type Scope struct {
	Loader   data.Loader
	Registry *Registry
}

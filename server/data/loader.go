package data

import (
	"fmt"
	"sync"

	"relview/server/association"
	"relview/server/object/meta"
)

//Loader fetches raw records of an object. Both methods return nil (and no
//error) when nothing matches.
type Loader interface {
	Get(m *meta.Meta, key string, val interface{}) (map[string]interface{}, error)
	GetAll(m *meta.Meta, key string, val interface{}) ([]map[string]interface{}, error)
}

//MemoryLoader keeps records in process, in insertion order.
type MemoryLoader struct {
	mutex   sync.RWMutex
	records map[string][]map[string]interface{}
}

func NewMemoryLoader() *MemoryLoader {
	return &MemoryLoader{records: make(map[string][]map[string]interface{})}
}

func (loader *MemoryLoader) Put(m *meta.Meta, records ...map[string]interface{}) {
	loader.mutex.Lock()
	defer loader.mutex.Unlock()
	for _, record := range records {
		loader.records[m.Name] = append(loader.records[m.Name], association.CopyOptions(record))
	}
}

func (loader *MemoryLoader) Flush() {
	loader.mutex.Lock()
	defer loader.mutex.Unlock()
	loader.records = make(map[string][]map[string]interface{})
}

func (loader *MemoryLoader) Get(m *meta.Meta, key string, val interface{}) (map[string]interface{}, error) {
	loader.mutex.RLock()
	defer loader.mutex.RUnlock()
	for _, record := range loader.records[m.Name] {
		if valuesEqual(record[key], val) {
			return association.CopyOptions(record), nil
		}
	}
	return nil, nil
}

func (loader *MemoryLoader) GetAll(m *meta.Meta, key string, val interface{}) ([]map[string]interface{}, error) {
	loader.mutex.RLock()
	defer loader.mutex.RUnlock()
	result := make([]map[string]interface{}, 0)
	for _, record := range loader.records[m.Name] {
		if valuesEqual(record[key], val) {
			result = append(result, association.CopyOptions(record))
		}
	}
	return result, nil
}

//JSON decoded numbers are float64 while keys given in code are usually ints.
func valuesEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

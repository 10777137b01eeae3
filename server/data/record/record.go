package record

import (
	"fmt"

	"relview/server/object/meta"
)

type Record struct {
	Meta *meta.Meta
	Data map[string]interface{}
}

func NewRecord(meta *meta.Meta, data map[string]interface{}) *Record {
	if data == nil {
		data = make(map[string]interface{})
	}
	return &Record{Meta: meta, Data: data}
}

func (record *Record) Pk() interface{} {
	return record.Data[record.Meta.Key]
}

//PkAsString formats the key the way loaders and URLs expect it.
func (record *Record) PkAsString() string {
	switch pk := record.Pk().(type) {
	case nil:
		return ""
	case float64:
		if pk == float64(int64(pk)) {
			return fmt.Sprintf("%d", int64(pk))
		}
		return fmt.Sprint(pk)
	default:
		return fmt.Sprint(pk)
	}
}

func (record *Record) Get(field string) (interface{}, bool) {
	value, ok := record.Data[field]
	return value, ok
}

func (record *Record) TypeName() string {
	return record.Meta.TypeName()
}

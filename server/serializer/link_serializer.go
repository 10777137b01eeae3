package serializer

import (
	"relview/server/association"
	"relview/server/data/record"
)

const LinkSerializerName = "link"

//LinkSerializer renders related records by their keys only.
type LinkSerializer struct {
	object  interface{}
	options map[string]interface{}
}

func NewLinkSerializer(object interface{}, options map[string]interface{}, scope *Scope) (association.Serializer, error) {
	switch object.(type) {
	case *record.Record, *record.RecordSet:
		return &LinkSerializer{object: object, options: options}, nil
	}
	return nil, nil
}

func (s *LinkSerializer) Object() interface{} {
	return s.object
}

func (s *LinkSerializer) JsonKey() string {
	switch object := s.object.(type) {
	case *record.Record:
		return object.Meta.Name
	case *record.RecordSet:
		return object.Meta.Name
	}
	return ""
}

func (s *LinkSerializer) Root() bool {
	root, _ := s.options[OptionRoot].(bool)
	return root
}

func (s *LinkSerializer) SerializableHash(adapterOptions, options map[string]interface{}, adapter association.Adapter) (interface{}, error) {
	switch object := s.object.(type) {
	case *record.Record:
		return object.Pk(), nil
	case *record.RecordSet:
		keys := make([]interface{}, 0, object.Len())
		for _, element := range object.Records {
			keys = append(keys, element.Pk())
		}
		return keys, nil
	}
	return nil, nil
}

package serializer

import (
	"relview/server/association"
	"relview/server/data/record"

	"github.com/jinzhu/inflection"
)

//CollectionSerializer renders a record set or a slice element by element.
type CollectionSerializer struct {
	object      interface{}
	jsonKey     string
	options     map[string]interface{}
	serializers []association.Serializer
}

//NewCollectionSerializer returns nil when some element has no serializer, so
//the collection is rendered as it is.
func NewCollectionSerializer(object interface{}, scope *Scope, options map[string]interface{}, depth int) (association.Serializer, error) {
	var elements []interface{}
	jsonKey := ""
	switch object := object.(type) {
	case *record.RecordSet:
		jsonKey = inflection.Plural(object.Meta.Name)
		elements = make([]interface{}, len(object.Records))
		for i, element := range object.Records {
			elements[i] = element
		}
	case []interface{}:
		elements = object
	default:
		return nil, nil
	}

	serializers := make([]association.Serializer, 0, len(elements))
	for _, element := range elements {
		serializer, err := serializerFor(element, options, scope, depth)
		if err != nil {
			return nil, err
		}
		if serializer == nil {
			return nil, nil
		}
		serializers = append(serializers, serializer)
	}
	if jsonKey == "" && len(serializers) > 0 {
		jsonKey = inflection.Plural(serializers[0].JsonKey())
	}
	return &CollectionSerializer{object: object, jsonKey: jsonKey, options: options, serializers: serializers}, nil
}

func (s *CollectionSerializer) Object() interface{} {
	return s.object
}

func (s *CollectionSerializer) JsonKey() string {
	return s.jsonKey
}

func (s *CollectionSerializer) Root() bool {
	root, _ := s.options[OptionRoot].(bool)
	return root
}

func (s *CollectionSerializer) SerializableHash(adapterOptions, options map[string]interface{}, adapter association.Adapter) (interface{}, error) {
	result := make([]interface{}, 0, len(s.serializers))
	for _, serializer := range s.serializers {
		serialization, err := serializer.SerializableHash(adapterOptions, options, adapter)
		if err != nil {
			return nil, err
		}
		result = append(result, serialization)
	}
	return result, nil
}

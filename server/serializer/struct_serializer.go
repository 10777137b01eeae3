package serializer

import (
	"relview/server/association"

	"github.com/fatih/structs"
	"github.com/iancoleman/strcase"
)

//StructSerializer renders plain structs which know their type name, keyed by
//their json tags. Relations built from meta only yield records, so structs
//come from callers that build associations on their own association.Reflection
//with a RecordSerializer as the parent.
type StructSerializer struct {
	object  association.Discriminator
	options map[string]interface{}
}

func IsStruct(object interface{}) bool {
	return structs.IsStruct(object)
}

func NewStructSerializer(object association.Discriminator, options map[string]interface{}) *StructSerializer {
	return &StructSerializer{object: object, options: options}
}

func (s *StructSerializer) Object() interface{} {
	return s.object
}

func (s *StructSerializer) JsonKey() string {
	return strcase.ToSnake(s.object.TypeName())
}

func (s *StructSerializer) Root() bool {
	root, _ := s.options[OptionRoot].(bool)
	return root
}

func (s *StructSerializer) SerializableHash(adapterOptions, options map[string]interface{}, adapter association.Adapter) (interface{}, error) {
	object := structs.New(s.object)
	object.TagName = "json"
	values := object.Map()
	if fields := association.FieldsOf(options); fields != nil {
		for name := range values {
			if !fields.Has(name) {
				delete(values, name)
			}
		}
	}
	return values, nil
}

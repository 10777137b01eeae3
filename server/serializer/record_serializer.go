package serializer

import (
	"relview/server/association"
	"relview/server/data"
	"relview/server/data/record"
)

//OptionRoot asks serializers of related objects to key their output by root name.
const OptionRoot = "root"

//RecordSerializer renders a record: its fields, then its included relations.
type RecordSerializer struct {
	record       *record.Record
	scope        *Scope
	options      map[string]interface{}
	depth        int
	associations []*association.Association
}

func NewRecordSerializer(record *record.Record, scope *Scope, options map[string]interface{}, depth int) *RecordSerializer {
	if options == nil {
		options = make(map[string]interface{})
	}
	return &RecordSerializer{record: record, scope: scope, options: options, depth: depth}
}

func (s *RecordSerializer) Object() interface{} {
	return s.record
}

func (s *RecordSerializer) JsonKey() string {
	return s.record.Meta.Name
}

func (s *RecordSerializer) Root() bool {
	root, _ := s.options[OptionRoot].(bool)
	return root
}

func (s *RecordSerializer) Depth() int {
	return s.depth
}

//Associations are built once per serializer, so every relation is fetched at
//most once however often the record is rendered.
func (s *RecordSerializer) Associations() []*association.Association {
	if s.associations != nil {
		return s.associations
	}
	include := IncludeTreeOf(s.options[association.OptionInclude])
	s.associations = make([]*association.Association, 0, len(s.record.Meta.Relations))
	for _, relation := range s.record.Meta.Relations {
		if !Included(include, relation.Name) {
			continue
		}
		s.associations = append(s.associations, association.New(
			data.NewReflection(relation, s.scope.Loader),
			association.Options{Parent: s, ParentOptions: s.options, IncludeSlice: IncludeSliceFor(include, relation.Name)},
		))
	}
	return s.associations
}

func (s *RecordSerializer) SerializableHash(adapterOptions, options map[string]interface{}, adapter association.Adapter) (interface{}, error) {
	fields := association.FieldsOf(options)
	result := make(map[string]interface{})
	for _, name := range s.record.Meta.Fields {
		if fields != nil && !fields.Has(name) {
			continue
		}
		if value, ok := s.record.Get(name); ok {
			result[name] = value
		}
	}
	if s.depth >= adapter.DepthLimit() {
		return result, nil
	}
	for _, a := range s.Associations() {
		if !a.IncludeData() {
			continue
		}
		value, err := a.SerializableHash(adapterOptions, adapter)
		if err != nil {
			return nil, err
		}
		result[a.Key()] = value
	}
	return result, nil
}

//SerializerFor picks the serializer of a related object: the one named by the
//serializer option, else one matching the object's kind. It returns nil for
//objects rendered as they are.
func (s *RecordSerializer) SerializerFor(object interface{}, options map[string]interface{}) (association.Serializer, error) {
	return serializerFor(object, options, s.scope, s.depth+1)
}

func serializerFor(object interface{}, options map[string]interface{}, scope *Scope, depth int) (association.Serializer, error) {
	if name, ok := options[association.OptionSerializer].(string); ok && name != "" {
		factory := scope.Registry.Get(name)
		if factory == nil {
			return nil, newUnknownSerializerError(name)
		}
		return factory(object, options, scope)
	}
	switch object := object.(type) {
	case *record.Record:
		return NewRecordSerializer(object, scope, options, depth), nil
	case *record.RecordSet, []interface{}:
		return NewCollectionSerializer(object, scope, options, depth)
	case association.Discriminator:
		//values of caller supplied reflections
		if IsStruct(object) {
			return NewStructSerializer(object, options), nil
		}
	}
	return nil, nil
}

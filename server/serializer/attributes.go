package serializer

import (
	"relview/logger"
	"relview/server/association"
	"relview/server/data"
	"relview/server/data/record"
)

//Attributes renders records as plain nested mappings. Relations deeper than
//the depth limit are left out.
type Attributes struct {
	scope      *Scope
	depthLimit int
}

func NewAttributes(loader data.Loader, registry *Registry, depthLimit int) *Attributes {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Attributes{scope: &Scope{Loader: loader, Registry: registry}, depthLimit: depthLimit}
}

func (adapter *Attributes) DepthLimit() int {
	return adapter.depthLimit
}

//Serialize renders one record. Options may carry "fields" (a mapping keyed by
//object name or a sequence of such mappings), "include" (a tree or a string
//like "author,comments.author") and "root".
func (adapter *Attributes) Serialize(target *record.Record, options map[string]interface{}) (interface{}, error) {
	serializer := adapter.serializerOf(target, options)
	adapterOptions := association.CopyOptions(options)
	delete(adapterOptions, association.OptionInclude)
	delete(adapterOptions, OptionRoot)

	serializerOptions := make(map[string]interface{})
	if names := association.ResolveFields(adapterOptions[association.OptionFields], serializer.JsonKey(), serializer.JsonKey()); len(names) > 0 {
		serializerOptions[association.OptionFields] = association.NewFieldSet(names...)
	}
	logger.Debug("Serializing %s '%s'", target.Meta.Name, target.PkAsString())
	return serializer.SerializableHash(adapterOptions, serializerOptions, adapter)
}

//Relationships lists the links and meta of the included relations of a record, by key.
func (adapter *Attributes) Relationships(target *record.Record, options map[string]interface{}) map[string]interface{} {
	relationships := make(map[string]interface{})
	for _, a := range adapter.serializerOf(target, options).Associations() {
		relationship := make(map[string]interface{})
		if links := a.Links(); len(links) > 0 {
			relationship["links"] = links
		}
		if meta := a.Meta(); meta != nil {
			relationship["meta"] = meta
		}
		if len(relationship) > 0 {
			relationships[a.Key()] = relationship
		}
	}
	return relationships
}

func (adapter *Attributes) serializerOf(target *record.Record, options map[string]interface{}) *RecordSerializer {
	include := IncludeTreeOf(options[association.OptionInclude])
	if include == nil {
		include = map[string]interface{}{IncludeOne: map[string]interface{}{}}
	}
	serializerOptions := map[string]interface{}{association.OptionInclude: include}
	if root, ok := options[OptionRoot].(bool); ok {
		serializerOptions[OptionRoot] = root
	}
	return NewRecordSerializer(target, adapter.scope, serializerOptions, 0)
}

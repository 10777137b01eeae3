package meta

import (
	"encoding/json"

	. "relview/server/object/description"
)

//Object metadata description.
type Meta struct {
	*MetaDescription
	Relations []*Relation
}

func (m *Meta) FindRelation(name string) *Relation {
	for _, relation := range m.Relations {
		if relation.Name == name {
			return relation
		}
	}
	return nil
}

//TypeName is the name records of this object are discriminated by.
func (m *Meta) TypeName() string {
	return m.Name
}

func (m *Meta) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.MetaDescription)
}

//Relation is a resolved RelationDescription: link metas are looked up in the cache.
type Relation struct {
	*RelationDescription
	Owner        *Meta
	LinkMeta     *Meta
	LinkMetaList *MetaList
}

//Options returns the live options bag of the description. Callers may mutate
//it between renders, e.g. to attach meta.
func (r *Relation) Options() map[string]interface{} {
	if r.RelationDescription.Options == nil {
		r.RelationDescription.Options = make(map[string]interface{})
	}
	return r.RelationDescription.Options
}

func (r *Relation) Collection() bool {
	return r.Type == RelationTypeArray
}

func (r *Relation) Generic() bool {
	return r.Type == RelationTypeGeneric
}

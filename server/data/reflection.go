package data

import (
	"relview/logger"
	"relview/server/association"
	"relview/server/data/errors"
	"relview/server/data/record"
	"relview/server/object/meta"
)

const (
	GenericInnerLinkObjectKey = "_object"
)

//Reflection fetches the related records of one relation through a Loader.
type Reflection struct {
	Relation *meta.Relation
	Loader   Loader
}

func NewReflection(relation *meta.Relation, loader Loader) *Reflection {
	return &Reflection{Relation: relation, Loader: loader}
}

func (r *Reflection) Name() string {
	return r.Relation.Name
}

func (r *Reflection) Options() map[string]interface{} {
	return r.Relation.Options()
}

func (r *Reflection) ForeignKeyOn() association.ForeignKeyOn {
	if r.Relation.IsBelongsTo() {
		return association.ForeignKeyOnSelf
	}
	return association.ForeignKeyOnRelated
}

func (r *Reflection) Collection() bool {
	return r.Relation.Collection()
}

//IncludeData is false only when the include_data option is false.
func (r *Reflection) IncludeData(includeSlice map[string]interface{}) bool {
	included, ok := r.Options()[association.OptionIncludeData].(bool)
	return !ok || included
}

//Value returns a *record.Record, a *record.RecordSet for array relations, or nil.
func (r *Reflection) Value(parent interface{}, includeSlice map[string]interface{}) (interface{}, error) {
	if !r.IncludeData(includeSlice) {
		return nil, nil
	}
	owner, ok := parent.(*record.Record)
	if !ok || owner == nil {
		return nil, errors.NewDataError(r.Relation.Owner.Name, errors.ErrWrongParent, "Relation '%s' can't be resolved for %T", r.Name(), parent)
	}

	switch {
	case r.Relation.Generic():
		return r.resolveGeneric(owner)
	case r.Relation.Collection():
		return r.resolvePlural(owner)
	case r.Relation.IsBelongsTo():
		key := linkKey(owner.Data[r.Name()], r.Relation.LinkMeta.Key)
		if key == nil {
			return nil, nil
		}
		return r.resolve(r.Relation.LinkMeta, r.Relation.LinkMeta.Key, key)
	default:
		return r.resolve(r.Relation.LinkMeta, r.Relation.OuterLinkField, owner.Pk())
	}
}

func (r *Reflection) resolve(objectMeta *meta.Meta, key string, val interface{}) (interface{}, error) {
	obj, err := r.Loader.Get(objectMeta, key, val)
	if err != nil || obj == nil {
		return nil, err
	}
	return record.NewRecord(objectMeta, obj), nil
}

func (r *Reflection) resolvePlural(owner *record.Record) (interface{}, error) {
	logger.Debug("Resolving plural: relation [name=%s, meta=%s], key=%v", r.Name(), r.Relation.LinkMeta.Name, owner.Pk())
	objs, err := r.Loader.GetAll(r.Relation.LinkMeta, r.Relation.OuterLinkField, owner.Pk())
	if err != nil {
		return nil, err
	}
	recordSet := record.NewRecordSet(r.Relation.LinkMeta)
	for _, obj := range objs {
		recordSet.Append(obj)
	}
	return recordSet, nil
}

//generic links are stored as {"_object": <meta name>, <key of that meta>: <pk>}
func (r *Reflection) resolveGeneric(owner *record.Record) (interface{}, error) {
	link, ok := owner.Data[r.Name()].(map[string]interface{})
	if !ok || link == nil {
		return nil, nil
	}
	objectName, _ := link[GenericInnerLinkObjectKey].(string)
	if objectName == "" {
		return nil, nil
	}
	objectMeta := r.Relation.LinkMetaList.GetByName(objectName)
	if objectMeta == nil {
		return nil, errors.NewDataError(r.Relation.Owner.Name, errors.ErrWrongGenericLink, "Generic relation '%s' can't point to '%s'", r.Name(), objectName)
	}
	pk := link[objectMeta.Key]
	if pk == nil || pk == "" {
		return nil, nil
	}
	return r.resolve(objectMeta, objectMeta.Key, pk)
}

//inner link values are either the key itself or the linked object
func linkKey(value interface{}, keyName string) interface{} {
	if obj, ok := value.(map[string]interface{}); ok {
		return obj[keyName]
	}
	return value
}

package meta

import (
	"fmt"
	"sync"

	"relview/logger"
	"relview/server/errors"
	"relview/server/object/description"
	"relview/utils"
)

type MetaCache struct {
	mutex    sync.RWMutex
	metaList map[string]*Meta
	order    []string
}

func NewCache() *MetaCache {
	return &MetaCache{mutex: sync.RWMutex{}, metaList: make(map[string]*Meta, 0)}
}

func (mc *MetaCache) Get(metaName string) *Meta {
	mc.mutex.RLock()
	defer mc.mutex.RUnlock()
	if meta, ok := mc.metaList[metaName]; ok {
		return meta
	} else {
		return nil
	}
}

//GetList returns cached metas in the order they were set.
func (mc *MetaCache) GetList() []*Meta {
	mc.mutex.RLock()
	defer mc.mutex.RUnlock()
	metaList := make([]*Meta, 0, len(mc.order))
	for _, name := range mc.order {
		metaList = append(metaList, mc.metaList[name])
	}
	return metaList
}

func (mc *MetaCache) Set(meta *Meta) {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()
	if _, ok := mc.metaList[meta.Name]; !ok {
		mc.order = append(mc.order, meta.Name)
	}
	mc.metaList[meta.Name] = meta
}

func (mc *MetaCache) Delete(metaName string) {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()
	delete(mc.metaList, metaName)
	if i := utils.IndexOf(mc.order, metaName); i >= 0 {
		mc.order = append(mc.order[:i], mc.order[i+1:]...)
	}
}

func (mc *MetaCache) Flush() {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()
	mc.metaList = make(map[string]*Meta, 0)
	mc.order = nil
}

//Fill validates and caches copies of all descriptions and then resolves their relations,
//so relations may point to objects declared later in the list.
func (mc *MetaCache) Fill(mdl []*description.MetaDescription) error {
	for _, md := range mdl {
		m, err := md.Clone()
		if err != nil {
			return err
		}
		(&description.NormalizationService{}).Normalize(m)
		if ok, err := (&description.MetaValidationService{}).Validate(m); !ok {
			return err
		}
		mc.Set(&Meta{MetaDescription: m})
	}
	for _, m := range mc.GetList() {
		if err := mc.resolveMeta(m); err != nil {
			return err
		}
	}
	logger.Debug("Meta cache filled with %d objects", len(mdl))
	return nil
}

//LoadFile fills the cache with the JSON list of descriptions stored at path.
func (mc *MetaCache) LoadFile(path string) error {
	mdl := make([]*description.MetaDescription, 0)
	if err := utils.ReadJsonFile(path, &mdl); err != nil {
		return errors.NewFatalError(errors.ErrInvalidMeta, fmt.Sprintf("Can't read meta file '%s'", path), err.Error())
	}
	return mc.Fill(mdl)
}

//FactoryMeta caches a single description whose relations point to already cached objects.
func (mc *MetaCache) FactoryMeta(md *description.MetaDescription) (*Meta, error) {
	m, err := md.Clone()
	if err != nil {
		return nil, err
	}
	(&description.NormalizationService{}).Normalize(m)
	if ok, err := (&description.MetaValidationService{}).Validate(m); !ok {
		return nil, err
	}
	metaObj := &Meta{MetaDescription: m}
	mc.Set(metaObj)

	if err := mc.resolveMeta(metaObj); err != nil {
		mc.Delete(metaObj.Name)
		return nil, err
	}
	return metaObj, nil
}

func (mc *MetaCache) resolveMeta(currentMeta *Meta) error {
	currentMeta.Relations = make([]*Relation, 0, len(currentMeta.MetaDescription.Relations))
	for i := range currentMeta.MetaDescription.Relations {
		relation, err := mc.factoryRelation(&currentMeta.MetaDescription.Relations[i], currentMeta)
		if err != nil {
			return err
		}
		currentMeta.Relations = append(currentMeta.Relations, relation)
	}
	return nil
}

func (mc *MetaCache) factoryRelation(relationDescription *description.RelationDescription, objectMeta *Meta) (*Relation, error) {
	relation := &Relation{
		RelationDescription: relationDescription,
		Owner:               objectMeta,
		LinkMetaList:        &MetaList{},
	}

	if relationDescription.LinkMeta != "" {
		linkMeta := mc.Get(relationDescription.LinkMeta)
		if linkMeta == nil {
			return nil, errors.NewValidationError(
				errors.ErrInvalidMeta,
				fmt.Sprintf("Relation '%s' of '%s' references meta '%s', which does not exist", relationDescription.Name, objectMeta.Name, relationDescription.LinkMeta),
				nil,
			)
		}
		relation.LinkMeta = linkMeta
		if relationDescription.LinkType == description.LinkTypeOuter && !linkMeta.HasField(relationDescription.OuterLinkField) {
			return nil, errors.NewValidationError(
				errors.ErrInvalidMeta,
				fmt.Sprintf("Outer relation '%s' of '%s' references field '%s' missing in '%s'", relationDescription.Name, objectMeta.Name, relationDescription.OuterLinkField, linkMeta.Name),
				nil,
			)
		}
	}

	for _, metaName := range relationDescription.LinkMetaList {
		linkMeta := mc.Get(metaName)
		if linkMeta == nil {
			return nil, errors.NewValidationError(
				errors.ErrInvalidMeta,
				fmt.Sprintf("Generic relation '%s' references meta %s, which does not exist", relationDescription.Name, metaName),
				nil,
			)
		}
		relation.LinkMetaList.AddMeta(linkMeta)
	}
	return relation, nil
}

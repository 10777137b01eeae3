package meta

//MetaList is the set of objects a generic relation may point to.
type MetaList struct {
	metas []*Meta
}

func (metaList *MetaList) AddMeta(meta *Meta) {
	metaList.metas = append(metaList.metas, meta)
}

func (metaList *MetaList) GetAll() []*Meta {
	return metaList.metas
}

func (metaList *MetaList) GetByName(metaName string) *Meta {
	for _, meta := range metaList.metas {
		if meta.Name == metaName {
			return meta
		}
	}
	return nil
}

func (metaList *MetaList) Names() []string {
	names := make([]string, len(metaList.metas))
	for i, meta := range metaList.metas {
		names[i] = meta.Name
	}
	return names
}

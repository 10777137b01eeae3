package description

import (
	"github.com/getlantern/deepcopy"
)

//The shadow struct of the Meta struct.
type MetaDescription struct {
	Name      string                `json:"name"`
	Key       string                `json:"key"`
	Fields    []string              `json:"fields"`
	Relations []RelationDescription `json:"relations"`
	Comment   string                `json:"comment,omitempty"`
}

//Clone returns a deep copy, so callers may change the copy without touching md.
func (md *MetaDescription) Clone() (*MetaDescription, error) {
	metaDescription := new(MetaDescription)
	if err := deepcopy.Copy(metaDescription, md); err != nil {
		return nil, NewMetaDescriptionError(md.Name, "clone", ErrJsonMarshal, err.Error())
	}
	return metaDescription, nil
}

func (md *MetaDescription) FindRelation(relationName string) *RelationDescription {
	for i, relation := range md.Relations {
		if relation.Name == relationName {
			return &md.Relations[i]
		}
	}
	return nil
}

func (md *MetaDescription) HasField(fieldName string) bool {
	for _, field := range md.Fields {
		if field == fieldName {
			return true
		}
	}
	return false
}

func NewMetaDescription(name string, key string, fields []string, relations []RelationDescription) *MetaDescription {
	return &MetaDescription{Name: name, Key: key, Fields: fields, Relations: relations}
}

package description

import (
	"relview/utils"
)

type MetaValidationService struct {
}

func (validationService *MetaValidationService) Validate(metaDescription *MetaDescription) (bool, error) {
	if metaDescription.Name == "" {
		return false, NewMetaDescriptionError("", "validate", ErrNotValid, "Object name is empty")
	}
	if metaDescription.Key == "" || !metaDescription.HasField(metaDescription.Key) {
		return false, NewMetaDescriptionError(metaDescription.Name, "validate", ErrNotValid, "Key field '%s' is not declared", metaDescription.Key)
	}
	if ok, err := validationService.checkFieldsDoesNotContainDuplicates(metaDescription); !ok {
		return false, err
	}
	for i := range metaDescription.Relations {
		if ok, err := validationService.checkRelation(metaDescription.Name, &metaDescription.Relations[i]); !ok {
			return false, err
		}
	}
	return true, nil
}

//check if meta contains fields or relations with duplicated name
func (validationService *MetaValidationService) checkFieldsDoesNotContainDuplicates(metaDescription *MetaDescription) (bool, error) {
	names := make([]string, 0, len(metaDescription.Fields)+len(metaDescription.Relations))
	for _, field := range metaDescription.Fields {
		if utils.Contains(names, field) {
			return false, NewMetaDescriptionError(metaDescription.Name, "validate", ErrNotValid, "Object contains duplicated field '%s'", field)
		}
		names = append(names, field)
	}
	for _, relation := range metaDescription.Relations {
		if utils.Contains(names, relation.Name) {
			return false, NewMetaDescriptionError(metaDescription.Name, "validate", ErrNotValid, "Object contains duplicated field '%s'", relation.Name)
		}
		names = append(names, relation.Name)
	}
	return true, nil
}

func (validationService *MetaValidationService) checkRelation(metaName string, relation *RelationDescription) (bool, error) {
	if relation.Name == "" {
		return false, NewMetaDescriptionError(metaName, "validate", ErrNotValid, "Relation name is empty")
	}
	switch relation.Type {
	case RelationTypeObject:
		if relation.LinkMeta == "" {
			return false, NewMetaDescriptionError(metaName, "validate", ErrNotValid, "Relation '%s' has no linkMeta", relation.Name)
		}
	case RelationTypeArray:
		if relation.LinkMeta == "" {
			return false, NewMetaDescriptionError(metaName, "validate", ErrNotValid, "Relation '%s' has no linkMeta", relation.Name)
		}
		if relation.LinkType == LinkTypeInner {
			return false, NewMetaDescriptionError(metaName, "validate", ErrNotValid, "Array relation '%s' can't be an inner link", relation.Name)
		}
	case RelationTypeGeneric:
		if len(relation.LinkMetaList) == 0 {
			return false, NewMetaDescriptionError(metaName, "validate", ErrNotValid, "Generic relation '%s' has empty linkMetaList", relation.Name)
		}
		if relation.LinkType == LinkTypeOuter {
			return false, NewMetaDescriptionError(metaName, "validate", ErrNotValid, "Generic relation '%s' can't be an outer link", relation.Name)
		}
	default:
		return false, NewMetaDescriptionError(metaName, "validate", ErrNotValid, "Relation '%s' has unknown type", relation.Name)
	}
	return true, nil
}

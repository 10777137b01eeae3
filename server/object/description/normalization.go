package description

import "fmt"

type NormalizationService struct {
}

//Set not specified default values
func (normalizationService *NormalizationService) Normalize(metaDescription *MetaDescription) *MetaDescription {
	normalizationService.NormalizeLinkTypes(&metaDescription.Relations)
	normalizationService.NormalizeOuterLinkFields(metaDescription.Name, &metaDescription.Relations)
	normalizationService.NormalizeOptions(&metaDescription.Relations)
	return metaDescription
}

//object and generic relations store the link on the owner, arrays on the related side
func (normalizationService *NormalizationService) NormalizeLinkTypes(relations *[]RelationDescription) {
	for i, relation := range *relations {
		if relation.LinkType != 0 {
			continue
		}
		if relation.Type == RelationTypeArray {
			(*relations)[i].LinkType = LinkTypeOuter
		} else {
			(*relations)[i].LinkType = LinkTypeInner
		}
	}
}

//outer links default to "<owner>_id" on the related object
func (normalizationService *NormalizationService) NormalizeOuterLinkFields(ownerName string, relations *[]RelationDescription) {
	for i, relation := range *relations {
		if relation.LinkType == LinkTypeOuter && relation.OuterLinkField == "" {
			(*relations)[i].OuterLinkField = fmt.Sprintf("%s_id", ownerName)
		}
	}
}

func (normalizationService *NormalizationService) NormalizeOptions(relations *[]RelationDescription) {
	for i, relation := range *relations {
		if relation.Options == nil {
			(*relations)[i].Options = make(map[string]interface{})
		}
	}
}

package description

import (
	"encoding/json"
)

//Relation types description
type RelationType int

const (
	RelationTypeObject  RelationType = iota + 1 //single related record
	RelationTypeArray                           //collection of related records
	RelationTypeGeneric                         //single related record of one of several objects
)

func AsRelationType(s string) (RelationType, bool) {
	switch s {
	case "object":
		return RelationTypeObject, true
	case "array":
		return RelationTypeArray, true
	case "generic":
		return RelationTypeGeneric, true
	default:
		return 0, false
	}
}

func (relationType RelationType) String() (string, bool) {
	switch relationType {
	case RelationTypeObject:
		return "object", true
	case RelationTypeArray:
		return "array", true
	case RelationTypeGeneric:
		return "generic", true
	default:
		return "", false
	}
}

func (relationType *RelationType) UnmarshalJSON(b []byte) error {
	var str string
	if e := json.Unmarshal(b, &str); e != nil {
		return e
	}
	if assumedType, ok := AsRelationType(str); ok {
		*relationType = assumedType
		return nil
	} else {
		return NewMetaDescriptionError("", "json_unmarshal", ErrJsonUnmarshal, "Incorrect relation type: %s", str)
	}
}

func (relationType RelationType) MarshalJSON() ([]byte, error) {
	if s, ok := relationType.String(); ok {
		return json.Marshal(s)
	} else {
		return nil, NewMetaDescriptionError("", "json_marshal", ErrJsonMarshal, "Incorrect relation type: %v", relationType)
	}
}

type LinkType int

const (
	LinkTypeOuter LinkType = iota + 1 //Child refers to the parent
	LinkTypeInner                     //Parent refers to the Child
)

func (lt LinkType) String() (string, bool) {
	switch lt {
	case LinkTypeOuter:
		return "outer", true
	case LinkTypeInner:
		return "inner", true
	default:
		return "", false
	}
}

func AsLinkType(s string) (LinkType, bool) {
	switch s {
	case "outer":
		return LinkTypeOuter, true
	case "inner":
		return LinkTypeInner, true
	default:
		return 0, false
	}
}

func (lt *LinkType) UnmarshalJSON(b []byte) error {
	var str string
	if e := json.Unmarshal(b, &str); e != nil {
		return e
	}
	if linkType, ok := AsLinkType(str); ok {
		*lt = linkType
		return nil
	} else {
		return NewMetaDescriptionError("", "json_unmarshal", ErrJsonUnmarshal, "Incorrect link type: %s", str)
	}
}

func (lt LinkType) MarshalJSON() ([]byte, error) {
	if s, ok := lt.String(); ok {
		return json.Marshal(s)
	} else {
		return nil, NewMetaDescriptionError("", "json_marshal", ErrJsonMarshal, "Incorrect link type: %v", lt)
	}
}

type RelationDescription struct {
	Name           string                 `json:"name"`
	Type           RelationType           `json:"type"`
	LinkType       LinkType               `json:"linkType,omitempty"`
	LinkMeta       string                 `json:"linkMeta,omitempty"`
	LinkMetaList   []string               `json:"linkMetaList,omitempty"`
	OuterLinkField string                 `json:"outerLinkField,omitempty"`
	Options        map[string]interface{} `json:"options,omitempty"`
}

//IsBelongsTo reports whether the foreign key is stored on the owning record.
func (r *RelationDescription) IsBelongsTo() bool {
	return r.LinkType == LinkTypeInner
}

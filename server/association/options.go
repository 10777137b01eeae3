package association

import (
	"sort"
)

//FieldSet is the allow-list of fields a serializer may emit.
type FieldSet map[string]struct{}

func NewFieldSet(names ...string) FieldSet {
	fieldSet := make(FieldSet, len(names))
	for _, name := range names {
		fieldSet[name] = struct{}{}
	}
	return fieldSet
}

func (fieldSet FieldSet) Has(name string) bool {
	_, ok := fieldSet[name]
	return ok
}

func (fieldSet FieldSet) Names() []string {
	names := make([]string, 0, len(fieldSet))
	for name := range fieldSet {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//FieldsOf returns the field restriction set in options, nil when there is none.
func FieldsOf(options map[string]interface{}) FieldSet {
	switch fields := options[OptionFields].(type) {
	case FieldSet:
		if len(fields) > 0 {
			return fields
		}
	case []string:
		if len(fields) > 0 {
			return NewFieldSet(fields...)
		}
	}
	return nil
}

//CopyOptions deep copies the maps and slices of an options map. Other values
//are shared.
func CopyOptions(options map[string]interface{}) map[string]interface{} {
	if options == nil {
		return make(map[string]interface{})
	}
	return copyValue(options).(map[string]interface{})
}

func copyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		c := make(map[string]interface{}, len(v))
		for key, item := range v {
			c[key] = copyValue(item)
		}
		return c
	case []interface{}:
		c := make([]interface{}, len(v))
		for i, item := range v {
			c[i] = copyValue(item)
		}
		return c
	case []string:
		return append([]string(nil), v...)
	case map[string][]string:
		c := make(map[string][]string, len(v))
		for key, item := range v {
			c[key] = append([]string(nil), item...)
		}
		return c
	case []map[string]interface{}:
		c := make([]map[string]interface{}, len(v))
		for i, item := range v {
			c[i] = copyValue(item).(map[string]interface{})
		}
		return c
	case []map[string][]string:
		c := make([]map[string][]string, len(v))
		for i, item := range v {
			c[i] = copyValue(item).(map[string][]string)
		}
		return c
	case map[string]string:
		c := make(map[string]string, len(v))
		for key, item := range v {
			c[key] = item
		}
		return c
	case FieldSet:
		return NewFieldSet(v.Names()...)
	default:
		return value
	}
}

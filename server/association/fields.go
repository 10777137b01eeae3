package association

import (
	"fmt"
)

//ResolveFields finds the field restriction for one related object.
//
//A mapping is keyed by the serializer's json key. A sequence of mappings is
//scanned in order for serializerName and the first non-empty entry wins.
//Anything else means no restriction.
func ResolveFields(fields interface{}, jsonKey, serializerName string) []string {
	switch fields := fields.(type) {
	case map[string]interface{}:
		return fieldNames(fields[jsonKey])
	case map[string][]string:
		return fields[jsonKey]
	case []interface{}:
		for _, entry := range fields {
			if names := fieldNames(entryFor(entry, serializerName)); len(names) > 0 {
				return names
			}
		}
	case []map[string]interface{}:
		for _, entry := range fields {
			if names := fieldNames(entry[serializerName]); len(names) > 0 {
				return names
			}
		}
	case []map[string][]string:
		for _, entry := range fields {
			if names := entry[serializerName]; len(names) > 0 {
				return names
			}
		}
	}
	return nil
}

func entryFor(entry interface{}, name string) interface{} {
	switch entry := entry.(type) {
	case map[string]interface{}:
		return entry[name]
	case map[string][]string:
		return entry[name]
	}
	return nil
}

func fieldNames(value interface{}) []string {
	switch value := value.(type) {
	case []string:
		return value
	case FieldSet:
		return value.Names()
	case []interface{}:
		names := make([]string, 0, len(value))
		for _, item := range value {
			switch item := item.(type) {
			case string:
				names = append(names, item)
			case fmt.Stringer:
				names = append(names, item.String())
			}
		}
		return names
	}
	return nil
}

package serializer

import (
	"strings"
)

const (
	//IncludeOne includes every relation of one level.
	IncludeOne = "*"
	//IncludeAll includes every relation of every level.
	IncludeAll = "**"
)

//ParseInclude turns "author,comments.author" into the include tree
//{"author": {}, "comments": {"author": {}}}.
func ParseInclude(include string) map[string]interface{} {
	tree := make(map[string]interface{})
	for _, path := range strings.Split(include, ",") {
		node := tree
		for _, name := range strings.Split(strings.TrimSpace(path), ".") {
			if name == "" {
				break
			}
			child, ok := node[name].(map[string]interface{})
			if !ok {
				child = make(map[string]interface{})
				node[name] = child
			}
			node = child
		}
	}
	return tree
}

//IncludeTreeOf reads the include option given either as a tree or as a string.
func IncludeTreeOf(value interface{}) map[string]interface{} {
	switch value := value.(type) {
	case map[string]interface{}:
		return value
	case string:
		return ParseInclude(value)
	case []string:
		return ParseInclude(strings.Join(value, ","))
	}
	return nil
}

func Included(tree map[string]interface{}, name string) bool {
	if _, ok := tree[name]; ok {
		return true
	}
	_, one := tree[IncludeOne]
	_, all := tree[IncludeAll]
	return one || all
}

//IncludeSliceFor is the part of the tree which applies to the relation name.
func IncludeSliceFor(tree map[string]interface{}, name string) map[string]interface{} {
	if slice, ok := tree[name].(map[string]interface{}); ok {
		return slice
	}
	if _, ok := tree[IncludeAll]; ok {
		return map[string]interface{}{IncludeAll: map[string]interface{}{}}
	}
	return map[string]interface{}{}
}

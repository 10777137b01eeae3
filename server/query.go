package server

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"relview/server/association"
	. "relview/server/errors"
	"relview/server/serializer"

	"github.com/Q-CIS-DEV/go-rql-parser"
)

//renderOptions builds the adapter options of a data request:
//  fields=comments(id,body),person(name)   field restriction per object, first match wins
//  only=title&only=id                      field restriction of the requested object
//  include=author,comments.author          relations to render
//  root=true                               key related objects by their root name
func renderOptions(objectName string, q url.Values) (map[string]interface{}, error) {
	options := make(map[string]interface{})

	fields := make([]interface{}, 0)
	if only := splitValues(q["only"]); len(only) > 0 {
		fields = append(fields, map[string]interface{}{objectName: only})
	}
	if expression := q.Get("fields"); expression != "" {
		parsed, err := parseFields(expression)
		if err != nil {
			return nil, err
		}
		fields = append(fields, parsed...)
	}
	if len(fields) > 0 {
		options[association.OptionFields] = fields
	}

	if include := q.Get("include"); include != "" {
		options[association.OptionInclude] = serializer.ParseInclude(include)
	}
	if root, err := strconv.ParseBool(q.Get("root")); err == nil {
		options[serializer.OptionRoot] = root
	}
	return options, nil
}

//parseFields reads a RQL list of calls where the operator names the object and
//the arguments are its fields.
func parseFields(expression string) ([]interface{}, error) {
	rqlNode, err := rqlParser.NewParser().Parse(expression)
	if err != nil {
		return nil, NewValidationError(ErrBadRequest, "Wrong fields expression: "+err.Error(), expression)
	}
	if rqlNode == nil || rqlNode.Node == nil {
		return nil, nil
	}
	nodes := []interface{}{rqlNode.Node}
	if strings.ToLower(rqlNode.Node.Op) == "and" {
		nodes = rqlNode.Node.Args
	}

	fields := make([]interface{}, 0, len(nodes))
	for _, arg := range nodes {
		node, ok := arg.(*rqlParser.RqlNode)
		if !ok {
			return nil, NewValidationError(ErrBadRequest, "Fields must be given as object(field,...)", expression)
		}
		names := make([]interface{}, 0, len(node.Args))
		for _, name := range node.Args {
			name, ok := name.(string)
			if !ok {
				return nil, NewValidationError(ErrBadRequest, "Wrong field of '"+node.Op+"'", expression)
			}
			names = append(names, name)
		}
		fields = append(fields, map[string]interface{}{node.Op: names})
	}
	return fields, nil
}

func splitValues(values []string) []interface{} {
	result := make([]interface{}, 0, len(values))
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				result = append(result, item)
			}
		}
	}
	return result
}

func depthOf(q url.Values, depthLimit int) (int, error) {
	value := q.Get("depth")
	if value == "" {
		return depthLimit, nil
	}
	depth, err := strconv.Atoi(value)
	if err != nil || depth < 0 {
		return 0, &ServerError{Status: http.StatusBadRequest, Code: ErrBadRequest, Msg: "Wrong depth: " + value, Data: nil}
	}
	return depth, nil
}

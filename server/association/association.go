package association

import (
	"fmt"
	"reflect"
	"strings"

	"relview/logger"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
	"github.com/pkg/errors"
)

//ErrTypeName is returned when a related object can't tell its type name.
var ErrTypeName = errors.New("related object has no type name")

//Association is the view of one relation of the object a parent serializer
//renders. It lives for a single serialization pass.
type Association struct {
	reflection Reflection
	options    Options
	lazy       *LazyAssociation
}

func New(reflection Reflection, options Options) *Association {
	return &Association{
		reflection: reflection,
		options:    options,
		lazy:       NewLazyAssociation(reflection, options),
	}
}

func (a *Association) Name() string {
	return a.reflection.Name()
}

//Key is the output key of the relation: the key option if set, the name otherwise.
func (a *Association) Key() string {
	switch key := a.lazy.ReflectionOptions()[OptionKey].(type) {
	case string:
		if key != "" {
			return key
		}
	case fmt.Stringer:
		if s := key.String(); s != "" {
			return s
		}
	}
	return a.Name()
}

func (a *Association) HasExplicitKey() bool {
	_, ok := a.lazy.ReflectionOptions()[OptionKey]
	return ok
}

func (a *Association) Links() map[string]string {
	links := make(map[string]string)
	switch value := a.lazy.ReflectionOptions()[OptionLinks].(type) {
	case map[string]string:
		for name, url := range value {
			links[name] = url
		}
	case map[string]interface{}:
		for name, url := range value {
			links[name] = fmt.Sprint(url)
		}
	}
	return links
}

//Meta is read from the reflection on every call since it may be changed
//between renders.
func (a *Association) Meta() interface{} {
	return a.reflection.Options()[OptionMeta]
}

func (a *Association) BelongsTo() bool {
	return a.reflection.ForeignKeyOn() == ForeignKeyOnSelf
}

//Polymorphic holds only for the boolean true.
func (a *Association) Polymorphic() bool {
	polymorphic, ok := a.lazy.ReflectionOptions()[OptionPolymorphic].(bool)
	return ok && polymorphic
}

func (a *Association) Object() (interface{}, error) {
	return a.lazy.Object()
}

func (a *Association) IncludeData() bool {
	return a.lazy.IncludeData()
}

func (a *Association) VirtualValue() (interface{}, error) {
	return a.lazy.VirtualValue()
}

func (a *Association) Collection() bool {
	return a.lazy.Collection()
}

//SerializableHash renders the relation. It returns nil when there is nothing
//to render, the virtual value as is, the serializer's output, or for a
//polymorphic relation {"type": t, t: output}.
func (a *Association) SerializableHash(adapterOptions map[string]interface{}, adapter Adapter) (interface{}, error) {
	serializer, err := a.lazy.Serializer()
	if err != nil {
		return nil, err
	}
	if virtualValue, _ := a.lazy.VirtualValue(); virtualValue != nil {
		return virtualValue, nil
	}
	if serializer == nil {
		return nil, nil
	}
	object := serializer.Object()
	if isNil(object) {
		return nil, nil
	}

	serializerName := serializer.JsonKey()
	if serializer.Root() {
		if serializerName, err = a.rootName(object); err != nil {
			return nil, err
		}
	}

	subOptions := CopyOptions(adapterOptions)
	if names := ResolveFields(adapterOptions[OptionFields], serializer.JsonKey(), serializerName); len(names) > 0 {
		subOptions[OptionFields] = NewFieldSet(names...)
	} else {
		delete(subOptions, OptionFields)
	}

	logger.Debug("Rendering relation '%s' as '%s'", a.Name(), serializerName)
	serialization, err := serializer.SerializableHash(adapterOptions, subOptions, adapter)
	if err != nil {
		return nil, err
	}

	if a.Polymorphic() && !isNil(serialization) {
		polymorphicType, err := a.typeName(object)
		if err != nil {
			return nil, err
		}
		polymorphicType = strcase.ToSnake(polymorphicType)
		serialization = map[string]interface{}{
			"type":          polymorphicType,
			polymorphicType: serialization,
		}
	}
	return serialization, nil
}

//rootName derives the key a root wrapping serializer emits from the object's type.
func (a *Association) rootName(object interface{}) (string, error) {
	typeName, err := a.typeName(object)
	if err != nil {
		return "", err
	}
	typeName = strings.TrimSuffix(typeName, CollectionSuffix)
	return strings.ToLower(inflection.Plural(typeName)), nil
}

func (a *Association) typeName(object interface{}) (string, error) {
	if discriminator, ok := object.(Discriminator); ok {
		if typeName := discriminator.TypeName(); typeName != "" {
			return typeName, nil
		}
	}
	return "", errors.Wrapf(ErrTypeName, "relation '%s', object of %T", a.Name(), object)
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

package association

import (
	"relview/logger"
)

var reflectionOptionNames = []string{OptionKey, OptionLinks, OptionPolymorphic, OptionSerializer, OptionVirtualValue}

//LazyAssociation fetches the related object(s) of a relation on first access
//and keeps the result, the serializer built for it and the virtual value for
//its own lifetime. It is not safe for concurrent use: every render pass builds
//its own.
type LazyAssociation struct {
	reflection        Reflection
	options           Options
	reflectionOptions map[string]interface{}

	resolved     bool
	object       interface{}
	serializer   Serializer
	virtualValue interface{}
	err          error
}

func NewLazyAssociation(reflection Reflection, options Options) *LazyAssociation {
	return &LazyAssociation{
		reflection:        reflection,
		options:           options,
		reflectionOptions: pickReflectionOptions(reflection.Options()),
	}
}

//meta is left out on purpose: it is read from the reflection on every access.
func pickReflectionOptions(options map[string]interface{}) map[string]interface{} {
	picked := make(map[string]interface{}, len(reflectionOptionNames))
	for _, name := range reflectionOptionNames {
		if value, ok := options[name]; ok {
			picked[name] = copyValue(value)
		}
	}
	return picked
}

func (lazy *LazyAssociation) ReflectionOptions() map[string]interface{} {
	return lazy.reflectionOptions
}

func (lazy *LazyAssociation) Object() (interface{}, error) {
	lazy.resolve()
	return lazy.object, lazy.err
}

//Serializer returns nil when the relation resolves to a virtual value or to nothing.
func (lazy *LazyAssociation) Serializer() (Serializer, error) {
	lazy.resolve()
	return lazy.serializer, lazy.err
}

//VirtualValue is either the configured virtual_value option or a related
//object no serializer is known for.
func (lazy *LazyAssociation) VirtualValue() (interface{}, error) {
	lazy.resolve()
	return lazy.virtualValue, lazy.err
}

func (lazy *LazyAssociation) Collection() bool {
	return lazy.reflection.Collection()
}

func (lazy *LazyAssociation) IncludeData() bool {
	return lazy.reflection.IncludeData(lazy.options.IncludeSlice)
}

func (lazy *LazyAssociation) resolve() {
	if lazy.resolved {
		return
	}
	lazy.resolved = true

	if virtualValue, ok := lazy.reflectionOptions[OptionVirtualValue]; ok && virtualValue != nil {
		lazy.virtualValue = virtualValue
		return
	}

	var parentObject interface{}
	if lazy.options.Parent != nil {
		parentObject = lazy.options.Parent.Object()
	}

	logger.Debug("Fetching relation '%s'", lazy.reflection.Name())
	object, err := lazy.reflection.Value(parentObject, lazy.options.IncludeSlice)
	if err != nil {
		lazy.err = err
		return
	}
	if isNil(object) {
		return
	}
	lazy.object = object

	if lazy.options.Parent != nil {
		serializer, err := lazy.options.Parent.SerializerFor(object, lazy.serializerOptions())
		if err != nil {
			lazy.err = err
			return
		}
		lazy.serializer = serializer
	}
	if lazy.serializer == nil {
		lazy.virtualValue = object
	}
}

func (lazy *LazyAssociation) serializerOptions() map[string]interface{} {
	options := CopyOptions(lazy.options.ParentOptions)
	delete(options, OptionSerializer)
	delete(options, OptionFields)
	if serializerName, ok := lazy.reflectionOptions[OptionSerializer]; ok {
		options[OptionSerializer] = serializerName
	}
	options[OptionInclude] = lazy.options.IncludeSlice
	return options
}

package association

//ForeignKeyOn tells which side of a relation stores the foreign key.
type ForeignKeyOn string

const (
	ForeignKeyOnSelf    ForeignKeyOn = "self"
	ForeignKeyOnRelated ForeignKeyOn = "related"
)

//Relation option names
const (
	OptionKey          = "key"
	OptionLinks        = "links"
	OptionMeta         = "meta"
	OptionPolymorphic  = "polymorphic"
	OptionVirtualValue = "virtual_value"
	OptionSerializer   = "serializer"
	OptionIncludeData  = "include_data"
)

//Adapter option names
const (
	OptionFields  = "fields"
	OptionInclude = "include"
)

//CollectionSuffix ends the type name of a collection of related objects.
const CollectionSuffix = "Collection"

//Reflection describes a named relation of the objects rendered by a parent serializer.
type Reflection interface {
	Name() string
	//Options is the raw options bag of the relation. It is owned by the object
	//graph and may change between renders.
	Options() map[string]interface{}
	ForeignKeyOn() ForeignKeyOn
	Collection() bool
	IncludeData(includeSlice map[string]interface{}) bool
	//Value fetches the related object(s) of parent.
	Value(parent interface{}, includeSlice map[string]interface{}) (interface{}, error)
}

//Serializer turns one related object (or collection) into its serializable form.
type Serializer interface {
	Object() interface{}
	JsonKey() string
	//Root reports whether the serializer wraps its output in its own root key.
	Root() bool
	SerializableHash(adapterOptions, options map[string]interface{}, adapter Adapter) (interface{}, error)
}

//Parent is the serializer owning the relation.
type Parent interface {
	Object() interface{}
	//SerializerFor returns nil without error when nothing can serialize object.
	SerializerFor(object interface{}, options map[string]interface{}) (Serializer, error)
}

//Adapter is the serialization pass a render happens within.
type Adapter interface {
	DepthLimit() int
}

//Discriminator is implemented by objects that can be the target of a
//polymorphic or root keyed relation.
type Discriminator interface {
	TypeName() string
}

//Options are given to an association by the parent serializer.
type Options struct {
	Parent        Parent
	ParentOptions map[string]interface{}
	IncludeSlice  map[string]interface{}
}

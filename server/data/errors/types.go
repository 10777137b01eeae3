package errors

const (
	ErrDataInternal        = "internal_data_error"
	ErrObjectClassNotFound = "object_class_not_found"
	ErrWrongParent         = "wrong_parent"
	ErrWrongGenericLink    = "wrong_generic_link"
	ErrKeyValueNotFound    = "key_value_not_found"
	ErrLoaderUnavailable   = "loader_unavailable"
)

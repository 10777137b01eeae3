package serializer

import (
	"fmt"

	"relview/server/errors"
)

const (
	ErrUnknownSerializer = "unknown_serializer"
)

func newUnknownSerializerError(name string) *errors.ServerError {
	return errors.NewFatalError(ErrUnknownSerializer, fmt.Sprintf("Serializer '%s' is not registered", name), nil)
}

package gotok

import (
	"fmt"
	"reflect"
)

// UnsupportedTypeError reports a type with no token mapping.
type UnsupportedTypeError struct {
	FieldPath string // field path (e.g. "person.address.geo")
	Type      reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unsupported type %s at %s", e.Type, e.FieldPath)
	}
	return fmt.Sprintf("unsupported type %s", e.Type)
}

// TagError reports a malformed `tok` struct tag.
type TagError struct {
	FieldPath string
	Tag       string
	Message   string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("bad tok tag %q at %s: %s", e.Tag, e.FieldPath, e.Message)
}

package gotok

import (
	"reflect"

	"github.com/signadot/serial-stream/go-serial/debug"
)

// Check reports whether v's type reaches kinds with no token mapping
// or fields with malformed `tok` tags. Tokens never fails at pull
// time; Check is the preflight for callers wanting the stronger
// contract. Interface-typed fields cannot be checked statically and
// are accepted.
func Check(v any) error {
	if v == nil {
		return nil
	}
	return checkType(reflect.TypeOf(v), "", map[reflect.Type]bool{})
}

func checkType(t reflect.Type, path string, seen map[reflect.Type]bool) error {
	if debug.Check() {
		debug.Logf("gotok: check %s at %q", t, path)
	}
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return &UnsupportedTypeError{FieldPath: path, Type: t}
	case reflect.Pointer, reflect.Slice, reflect.Array:
		// types can be self-referential through any container kind,
		// not just structs
		if seen[t] {
			return nil
		}
		seen[t] = true
		return checkType(t.Elem(), path, seen)
	case reflect.Map:
		if seen[t] {
			return nil
		}
		seen[t] = true
		if err := checkType(t.Key(), path, seen); err != nil {
			return err
		}
		return checkType(t.Elem(), path, seen)
	case reflect.Struct:
		if seen[t] {
			return nil
		}
		seen[t] = true
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fieldPath := f.Name
			if path != "" {
				fieldPath = path + "." + f.Name
			}
			info, err := fieldInfoOf(f, i)
			if err != nil {
				return &TagError{FieldPath: fieldPath, Tag: f.Tag.Get("tok"), Message: err.Error()}
			}
			if info.Omit {
				continue
			}
			if err := checkType(f.Type, fieldPath, seen); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

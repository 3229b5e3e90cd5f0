package gotok

import (
	"fmt"
	"reflect"
	"strings"
)

// fieldInfo holds field metadata extracted from struct tags.
type fieldInfo struct {
	// Name is the field name emitted in the token stream. Defaults to
	// the Go field name, overridden by `tok:"field=..."`.
	Name string

	// Index is the struct field index.
	Index int

	// Optional adds option framing: zero value -> Option(false),
	// otherwise Option(true) plus the value. Pointer fields keep
	// their own framing; the flag adds nothing for them.
	Optional bool

	// Omit drops the field from the stream and from declared counts.
	Omit bool
}

// parseTag parses a `tok` struct tag into key-value pairs and flags.
// Values may be quoted with single quotes: `tok:"field='a b'"`.
// Flags (keys without values) map to "".
func parseTag(tag string) (map[string]string, error) {
	result := map[string]string{}
	if tag == "" {
		return result, nil
	}

	var parts []string
	var current strings.Builder
	inQuote := false
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
		case c == ' ' && !inQuote:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteByte(c)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	for _, part := range parts {
		k, v, _ := strings.Cut(part, "=")
		if k == "" {
			return nil, fmt.Errorf("empty key in %q", part)
		}
		if _, dup := result[k]; dup {
			return nil, fmt.Errorf("duplicate key %q", k)
		}
		result[k] = v
	}
	return result, nil
}

func fieldInfoOf(f reflect.StructField, index int) (*fieldInfo, error) {
	info := &fieldInfo{Name: f.Name, Index: index}
	tag, ok := f.Tag.Lookup("tok")
	if !ok {
		return info, nil
	}
	kvs, err := parseTag(tag)
	if err != nil {
		return nil, err
	}
	for k, v := range kvs {
		switch k {
		case "field":
			if v == "" {
				return nil, fmt.Errorf("field= needs a name")
			}
			info.Name = v
		case "optional":
			info.Optional = true
		case "omit":
			info.Omit = true
		default:
			return nil, fmt.Errorf("unknown key %q", k)
		}
	}
	return info, nil
}

// structFields returns the emitted fields of t in declaration order.
// Unexported fields, omitted fields and fields with malformed tags are
// dropped; Check surfaces the malformed ones as errors.
func structFields(t reflect.Type) []*fieldInfo {
	var fields []*fieldInfo
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		info, err := fieldInfoOf(f, i)
		if err != nil {
			continue
		}
		if info.Omit {
			continue
		}
		fields = append(fields, info)
	}
	return fields
}

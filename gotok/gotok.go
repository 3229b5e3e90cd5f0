package gotok

import (
	"reflect"
	"sort"

	"github.com/signadot/serial-stream/go-serial/debug"
	"github.com/signadot/serial-stream/go-serial/serial"
	"github.com/signadot/serial-stream/go-serial/token"
)

// Tokens returns a lazy token sequence describing v. The sequence
// holds reflective references into v: v must stay alive and unmutated
// until the sequence is exhausted or abandoned.
func Tokens(v any) serial.Iter {
	if debug.Reflect() {
		debug.Logf("gotok: tokens for %T", v)
	}
	if v == nil {
		return serial.One(token.Null())
	}
	return valueIter(reflect.ValueOf(v))
}

func valueIter(rv reflect.Value) serial.Iter {
	switch rv.Kind() {
	case reflect.Invalid:
		return serial.One(token.Null())
	case reflect.Bool:
		return serial.One(token.Bool(rv.Bool()))
	case reflect.Int:
		return serial.One(token.Int(int(rv.Int())))
	case reflect.Int8:
		return serial.One(token.I8(int8(rv.Int())))
	case reflect.Int16:
		return serial.One(token.I16(int16(rv.Int())))
	case reflect.Int32:
		return serial.One(token.I32(int32(rv.Int())))
	case reflect.Int64:
		return serial.One(token.I64(rv.Int()))
	case reflect.Uint, reflect.Uintptr:
		return serial.One(token.Uint(uint(rv.Uint())))
	case reflect.Uint8:
		return serial.One(token.U8(uint8(rv.Uint())))
	case reflect.Uint16:
		return serial.One(token.U16(uint16(rv.Uint())))
	case reflect.Uint32:
		return serial.One(token.U32(uint32(rv.Uint())))
	case reflect.Uint64:
		return serial.One(token.U64(rv.Uint()))
	case reflect.Float32:
		return serial.One(token.F32(float32(rv.Float())))
	case reflect.Float64:
		return serial.One(token.F64(rv.Float()))
	case reflect.String:
		return serial.One(token.Str(rv.String()))
	case reflect.Interface:
		if rv.IsNil() {
			return serial.One(token.Null())
		}
		return valueIter(rv.Elem())
	case reflect.Pointer:
		if rv.IsNil() {
			return serial.Optional(nil)
		}
		return serial.Optional(valueIter(rv.Elem()))
	case reflect.Slice, reflect.Array:
		return serial.NewCompound(token.SeqStart(rv.Len()), &elemIter{rv: rv})
	case reflect.Map:
		keys := rv.MapKeys()
		sortKeys(keys)
		return serial.NewCompound(token.MapStart(rv.Len()), &entryIter{rv: rv, keys: keys})
	case reflect.Struct:
		fields := structFields(rv.Type())
		start := token.StructStart(rv.Type().Name(), len(fields))
		return serial.NewCompound(start, &fieldIter{rv: rv, fields: fields})
	default:
		// chan, func, complex, unsafe pointer: no token mapping.
		// Emit Null so declared counts stay correct; Check reports
		// these kinds ahead of time.
		return serial.One(token.Null())
	}
}

// elemIter flattens slice/array elements, building one element
// sequence at a time.
type elemIter struct {
	rv  reflect.Value
	i   int
	cur serial.Iter
}

func (e *elemIter) Next() (token.Token, bool) {
	for {
		if e.cur != nil {
			if t, ok := e.cur.Next(); ok {
				return t, true
			}
			e.cur = nil
		}
		if e.i >= e.rv.Len() {
			return token.Token{}, false
		}
		e.cur = valueIter(e.rv.Index(e.i))
		e.i++
	}
}

// entryIter flattens map entries: key sequence fully, then value
// sequence, entry by entry.
type entryIter struct {
	rv   reflect.Value
	keys []reflect.Value
	i    int

	phase    int // 0: next entry, 1: draining key, 2: draining value
	key, val serial.Iter
}

func (e *entryIter) Next() (token.Token, bool) {
	for {
		switch e.phase {
		case 0:
			if e.i >= len(e.keys) {
				return token.Token{}, false
			}
			k := e.keys[e.i]
			e.i++
			e.key = valueIter(k)
			e.val = valueIter(e.rv.MapIndex(k))
			e.phase = 1
		case 1:
			if t, ok := e.key.Next(); ok {
				return t, true
			}
			e.phase = 2
		default:
			if t, ok := e.val.Next(); ok {
				return t, true
			}
			e.phase = 0
		}
	}
}

// sortKeys orders sortable key kinds for deterministic output. Other
// kinds keep Go map iteration order.
func sortKeys(keys []reflect.Value) {
	if len(keys) < 2 {
		return
	}
	switch keys[0].Kind() {
	case reflect.String:
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Int() < keys[j].Int() })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Uint() < keys[j].Uint() })
	case reflect.Float32, reflect.Float64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Float() < keys[j].Float() })
	}
}

// fieldIter emits Str(name) then the field value's sequence for each
// emitted field.
type fieldIter struct {
	rv     reflect.Value
	fields []*fieldInfo
	i      int
	named  bool // Str(name) already emitted for fields[i]
	cur    serial.Iter
}

func (f *fieldIter) Next() (token.Token, bool) {
	for {
		if f.cur != nil {
			if t, ok := f.cur.Next(); ok {
				return t, true
			}
			f.cur = nil
			f.named = false
			f.i++
		}
		if f.i >= len(f.fields) {
			return token.Token{}, false
		}
		info := f.fields[f.i]
		if !f.named {
			f.named = true
			return token.Str(info.Name), true
		}
		f.cur = f.fieldValue(info)
	}
}

func (f *fieldIter) fieldValue(info *fieldInfo) serial.Iter {
	fv := f.rv.Field(info.Index)
	if !info.Optional || fv.Kind() == reflect.Pointer {
		// pointer fields carry option framing already; the tag adds
		// nothing and must not double-wrap
		return valueIter(fv)
	}
	if fv.IsZero() {
		return serial.Optional(nil)
	}
	return serial.Optional(valueIter(fv))
}

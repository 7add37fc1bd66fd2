package value

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// From converts an arbitrary Go value into a Value tree.
//
// Values that already are a Value, or implement Snapshotter, convert
// themselves. Protocol buffer messages are walked by field number. Structs
// keep their exported fields in declaration order; a `snap:"name"` tag renames
// a field and `snap:"-"` drops it. Anything without a structural form (funcs,
// channels, unsafe pointers, values that contain themselves) becomes an Opaque leaf.
func From(x any) Value {
	c := converter{visiting: make(map[visit]bool)}

	return c.convert(reflect.ValueOf(x))
}

type converter struct {
	visiting map[visit]bool
}

// visit identifies a reference value on the current path. Slices sharing a
// backing array differ by length, so the length is part of the key.
type visit struct {
	ptr uintptr
	len int
	typ reflect.Type
}

// enter marks v as being converted. It returns false when v is already on the
// current path, i.e. the value contains itself.
func (c *converter) enter(v reflect.Value, length int) (func(), bool) {
	key := visit{ptr: v.Pointer(), len: length, typ: v.Type()}
	if c.visiting[key] {
		return nil, false
	}

	c.visiting[key] = true

	return func() { delete(c.visiting, key) }, true
}

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

//nolint:cyclop,gocyclo // Dispatch over reflect kinds.
func (c *converter) convert(v reflect.Value) Value {
	if !v.IsValid() {
		return Null{}
	}

	if converted, ok := c.convertInterface(v); ok {
		return converted
	}

	switch v.Kind() {
	case reflect.Bool:
		return Bool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(v.Uint())
	case reflect.Float32:
		return Float(shortestFloat32(float32(v.Float())))
	case reflect.Float64:
		return Float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		return Opaque{Type: v.Type().String(), Repr: strconv.FormatComplex(v.Complex(), 'g', -1, 128)}
	case reflect.String:
		return String(v.String())
	case reflect.Slice:
		if v.IsNil() {
			return Null{}
		}

		if v.Type().Elem().Kind() == reflect.Uint8 {
			return Bytes(append([]byte(nil), v.Bytes()...))
		}

		leave, ok := c.enter(v, v.Len())
		if !ok {
			return Opaque{Type: v.Type().String(), Repr: "cycle"}
		}
		defer leave()

		return c.sequence(v)
	case reflect.Array:
		return c.sequence(v)
	case reflect.Map:
		if v.IsNil() {
			return Null{}
		}

		leave, ok := c.enter(v, 0)
		if !ok {
			return Opaque{Type: v.Type().String(), Repr: "cycle"}
		}
		defer leave()

		return c.mapping(v)
	case reflect.Struct:
		return c.record(v)
	case reflect.Pointer:
		return c.pointer(v)
	case reflect.Interface:
		if v.IsNil() {
			return Null{}
		}

		return c.convert(v.Elem())
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return Null{}
		}

		return Opaque{Type: v.Type().String()}
	}

	return Opaque{Type: v.Type().String()}
}

// convertInterface handles types that know how to represent themselves.
func (c *converter) convertInterface(v reflect.Value) (Value, bool) {
	if !v.CanInterface() {
		return nil, false
	}

	if v.Kind() == reflect.Pointer && v.IsNil() {
		return Null{}, true
	}

	switch v.Type() {
	case timeType:
		t, _ := v.Interface().(time.Time)
		return String(t.Format(time.RFC3339Nano)), true
	case durationType:
		d, _ := v.Interface().(time.Duration)
		return String(d.String()), true
	}

	switch x := v.Interface().(type) {
	case Value:
		return x, true
	case Snapshotter:
		return x.SnapshotValue(), true
	case proto.Message:
		return fromProto(x.ProtoReflect()), true
	case error:
		if v.Kind() != reflect.Struct {
			return String(x.Error()), true
		}
	}

	return nil, false
}

func (c *converter) sequence(v reflect.Value) Value {
	seq := make(Seq, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		seq = append(seq, c.convert(v.Index(i)))
	}

	return seq
}

func (c *converter) mapping(v reflect.Value) Value {
	m := make(Map, 0, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		m = append(m, Entry{Key: c.convert(iter.Key()), Value: c.convert(iter.Value())})
	}

	return m
}

func (c *converter) record(v reflect.Value) Value {
	t := v.Type()
	rec := Record{Type: t.Name()}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name

		if tag, ok := field.Tag.Lookup("snap"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}

			if tagName != "" {
				name = tagName
			}
		}

		rec.Fields = append(rec.Fields, Field{Key: name, Value: c.convert(v.Field(i))})
	}

	return rec
}

func (c *converter) pointer(v reflect.Value) Value {
	if v.IsNil() {
		return Null{}
	}

	leave, ok := c.enter(v, 0)
	if !ok {
		return Opaque{Type: v.Type().String(), Repr: "cycle"}
	}
	defer leave()

	return c.convert(v.Elem())
}

func shortestFloat32(f float32) float64 {
	parsed, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		return float64(f)
	}

	return parsed
}

func fromProto(msg protoreflect.Message) Value {
	if !msg.IsValid() {
		return Null{}
	}

	desc := msg.Descriptor()
	rec := Record{Type: string(desc.FullName())}

	fields := desc.Fields()
	ordered := make([]protoreflect.FieldDescriptor, 0, fields.Len())

	for i := 0; i < fields.Len(); i++ {
		if fd := fields.Get(i); msg.Has(fd) {
			ordered = append(ordered, fd)
		}
	}

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Number() < ordered[j].Number()
	})

	for _, fd := range ordered {
		rec.Fields = append(rec.Fields, Field{Key: string(fd.Name()), Value: protoField(fd, msg.Get(fd))})
	}

	return rec
}

func protoField(fd protoreflect.FieldDescriptor, v protoreflect.Value) Value {
	switch {
	case fd.IsList():
		list := v.List()
		seq := make(Seq, 0, list.Len())

		for i := 0; i < list.Len(); i++ {
			seq = append(seq, protoSingular(fd, list.Get(i)))
		}

		return seq
	case fd.IsMap():
		m := Map{}

		v.Map().Range(func(k protoreflect.MapKey, mv protoreflect.Value) bool {
			m = append(m, Entry{
				Key:   protoSingular(fd.MapKey(), k.Value()),
				Value: protoSingular(fd.MapValue(), mv),
			})

			return true
		})

		return m
	}

	return protoSingular(fd, v)
}

//nolint:exhaustive // Integer kinds are grouped; unknown kinds fall through to Opaque.
func protoSingular(fd protoreflect.FieldDescriptor, v protoreflect.Value) Value {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return Bool(v.Bool())
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return Int(v.Int())
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind, protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return Uint(v.Uint())
	case protoreflect.FloatKind:
		return Float(shortestFloat32(float32(v.Float())))
	case protoreflect.DoubleKind:
		return Float(v.Float())
	case protoreflect.StringKind:
		return String(v.String())
	case protoreflect.BytesKind:
		return Bytes(append([]byte(nil), v.Bytes()...))
	case protoreflect.EnumKind:
		if ev := fd.Enum().Values().ByNumber(v.Enum()); ev != nil {
			return String(ev.Name())
		}

		return Int(v.Enum())
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return fromProto(v.Message())
	}

	return Opaque{Type: fd.Kind().String(), Repr: v.String()}
}

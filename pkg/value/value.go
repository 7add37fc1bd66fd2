// Package value models test output as a closed tree of variants and renders
// it into a canonical, deterministic text form used as snapshot contents.
package value

// Value is one node of the tree. The set of variants is closed; use From to
// convert arbitrary Go values.
type Value interface {
	isValue()
}

// Snapshotter is implemented by types that convert themselves into a Value.
type Snapshotter interface {
	SnapshotValue() Value
}

// Null is the absent value (nil pointers, nil interfaces).
type Null struct{}

// Bool is a boolean scalar.
type Bool bool

// Int is a signed integer scalar.
type Int int64

// Uint is an unsigned integer scalar.
type Uint uint64

// Float is a floating point scalar.
type Float float64

// String is a text scalar.
type String string

// Bytes is a raw byte string.
type Bytes []byte

// Seq is an ordered sequence. Order is preserved as given.
type Seq []Value

// Field is one named member of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record is a set of named fields kept in declaration order.
type Record struct {
	Type   string
	Fields []Field
}

// Entry is one key/value pair of a Map.
type Entry struct {
	Key   Value
	Value Value
}

// Map has unordered semantics: entries are sorted by their serialized key
// when rendered.
type Map []Entry

// Opaque is a leaf for values the tree cannot represent structurally. Repr
// is a debug representation.
type Opaque struct {
	Type string
	Repr string
}

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Int) isValue()    {}
func (Uint) isValue()   {}
func (Float) isValue()  {}
func (String) isValue() {}
func (Bytes) isValue()  {}
func (Seq) isValue()    {}
func (Record) isValue() {}
func (Map) isValue()    {}
func (Opaque) isValue() {}

// NewRecord builds a Record with the given type name and fields.
func NewRecord(typeName string, fields ...Field) Record {
	return Record{Type: typeName, Fields: fields}
}

// F is shorthand for a Field.
func F(key string, v Value) Field {
	return Field{Key: key, Value: v}
}

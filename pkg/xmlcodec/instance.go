package xmlcodec

import (
	"fmt"
	"time"
)

// Instance is a concrete value graph conforming to a Schema. Every container
// field is a fresh allocation owned by this instance alone; nothing is shared
// between instances, so concurrent work on distinct instances needs no
// locking.
//
// Presence is tracked separately from zero values: a field never set (and
// never seen on the wire) is absent and is omitted on serialization.
//
// Accessing a field the schema does not declare, or with the wrong kind, is
// a programming error and panics; wire-level problems are returned as errors
// by Deserialize and Marshal.
type Instance struct {
	schema *Schema
	values map[string]any
	set    map[string]bool
}

// New allocates an empty instance of schema. List and mapping fields start
// as fresh empty containers; nested children are allocated on first access
// so self-referential schemas stay finite.
func New(schema *Schema) *Instance {
	in := &Instance{
		schema: schema,
		values: make(map[string]any, len(schema.Fields)),
		set:    make(map[string]bool, len(schema.Fields)),
	}

	for i := range schema.Fields {
		f := &schema.Fields[i]
		switch f.Kind {
		case KindObjectList:
			in.values[f.Name] = []*Instance{}
		case KindScalarList:
			in.values[f.Name] = []any{}
		case KindMapping:
			in.values[f.Name] = map[string]string{}
		case KindScalar, KindNested:
		}
	}

	return in
}

// Schema returns the schema this instance conforms to.
func (in *Instance) Schema() *Schema {
	return in.schema
}

// Has reports whether the named field has been populated.
func (in *Instance) Has(name string) bool {
	in.mustField(name)

	return in.set[name]
}

// GetString returns a String or Base64 scalar, or "" when absent. Base64
// fields hold the decoded form.
func (in *Instance) GetString(name string) string {
	f := in.mustKind(name, KindScalar)
	if f.Scalar != String && f.Scalar != Base64 {
		panic(kindPanic(in.schema, name, "string scalar"))
	}

	s, _ := in.values[name].(string)

	return s
}

// GetInt returns an Int scalar, or 0 when absent.
func (in *Instance) GetInt(name string) int {
	in.mustScalar(name, Int)
	n, _ := in.values[name].(int)

	return n
}

// GetBool returns a Bool scalar, or false when absent.
func (in *Instance) GetBool(name string) bool {
	in.mustScalar(name, Bool)
	b, _ := in.values[name].(bool)

	return b
}

// GetTime returns a DateTime scalar, or the zero time when absent.
func (in *Instance) GetTime(name string) time.Time {
	in.mustScalar(name, DateTime)
	t, _ := in.values[name].(time.Time)

	return t
}

// SetString populates a String or Base64 scalar. Base64 fields take the
// decoded form; encoding happens on serialization.
func (in *Instance) SetString(name, v string) {
	f := in.mustKind(name, KindScalar)
	if f.Scalar != String && f.Scalar != Base64 {
		panic(kindPanic(in.schema, name, "string scalar"))
	}

	in.values[name] = v
	in.set[name] = true
}

// SetInt populates an Int scalar.
func (in *Instance) SetInt(name string, v int) {
	in.mustScalar(name, Int)
	in.values[name] = v
	in.set[name] = true
}

// SetBool populates a Bool scalar.
func (in *Instance) SetBool(name string, v bool) {
	in.mustScalar(name, Bool)
	in.values[name] = v
	in.set[name] = true
}

// SetTime populates a DateTime scalar.
func (in *Instance) SetTime(name string, v time.Time) {
	in.mustScalar(name, DateTime)
	in.values[name] = v
	in.set[name] = true
}

// Nested returns the child object of a fixed nested field, allocating a
// fresh empty child and marking the field present on first access. Not valid
// for polymorphic fields; use Variant and SetNested there.
func (in *Instance) Nested(name string) *Instance {
	f := in.mustKind(name, KindNested)
	if f.Schema == nil {
		panic(kindPanic(in.schema, name, "fixed nested field"))
	}

	if ch, ok := in.values[name].(*Instance); ok {
		return ch
	}

	ch := New(f.Schema)
	in.values[name] = ch
	in.set[name] = true

	return ch
}

// Variant returns the polymorphic child object, or nil when unset.
func (in *Instance) Variant(name string) *Instance {
	f := in.mustKind(name, KindNested)
	if len(f.Variants) == 0 {
		panic(kindPanic(in.schema, name, "polymorphic nested field"))
	}

	ch, _ := in.values[name].(*Instance)

	return ch
}

// SetNested replaces the child object of a nested field. For polymorphic
// fields the child's schema must belong to the declared variant set;
// anything else fails with AmbiguousTypeError instead of being guessed at.
func (in *Instance) SetNested(name string, child *Instance) error {
	f := in.mustKind(name, KindNested)

	if len(f.Variants) > 0 {
		if child == nil {
			return &AmbiguousTypeError{Field: name}
		}

		if !f.allowsVariant(child.schema) {
			return &AmbiguousTypeError{Field: name, Schema: child.schema.Name}
		}
	}

	in.values[name] = child
	in.set[name] = true

	return nil
}

// Objects returns the items of an object list field in order.
func (in *Instance) Objects(name string) []*Instance {
	in.mustKind(name, KindObjectList)
	list, _ := in.values[name].([]*Instance)

	return list
}

// AppendObject appends a child object to an object list field.
func (in *Instance) AppendObject(name string, child *Instance) {
	in.mustKind(name, KindObjectList)
	list, _ := in.values[name].([]*Instance)
	in.values[name] = append(list, child)
	in.set[name] = true
}

// ScalarItems returns the typed items of a scalar list field in order.
func (in *Instance) ScalarItems(name string) []any {
	in.mustKind(name, KindScalarList)
	list, _ := in.values[name].([]any)

	return list
}

// Strings returns a String or Base64 scalar list as []string.
func (in *Instance) Strings(name string) []string {
	f := in.mustKind(name, KindScalarList)
	if f.Scalar != String && f.Scalar != Base64 {
		panic(kindPanic(in.schema, name, "string scalar list"))
	}

	list, _ := in.values[name].([]any)
	out := make([]string, len(list))

	for i, v := range list {
		out[i], _ = v.(string)
	}

	return out
}

// AppendScalar appends a typed item to a scalar list field. The value's Go
// type must match the declared scalar type.
func (in *Instance) AppendScalar(name string, v any) {
	f := in.mustKind(name, KindScalarList)
	if !scalarTypeOK(f.Scalar, v) {
		panic(kindPanic(in.schema, name, fmt.Sprintf("scalar list item of type %T", v)))
	}

	list, _ := in.values[name].([]any)
	in.values[name] = append(list, v)
	in.set[name] = true
}

// Mapping returns the live key/value map of a mapping field. Use Put to add
// entries so presence is tracked.
func (in *Instance) Mapping(name string) map[string]string {
	in.mustKind(name, KindMapping)
	m, _ := in.values[name].(map[string]string)

	return m
}

// Put inserts a key/value pair into a mapping field. Last write wins.
func (in *Instance) Put(name, key, value string) {
	in.mustKind(name, KindMapping)
	m, _ := in.values[name].(map[string]string)
	m[key] = value
	in.set[name] = true
}

// Equal compares two instances structurally: same schema, same populated
// fields, same values. Times compare by instant, lists by order, mappings by
// content.
func (in *Instance) Equal(other *Instance) bool {
	if in == nil || other == nil {
		return in == other
	}

	if in.schema != other.schema {
		return false
	}

	for i := range in.schema.Fields {
		f := &in.schema.Fields[i]
		if in.set[f.Name] != other.set[f.Name] {
			return false
		}

		if !in.set[f.Name] {
			continue
		}

		if !fieldEqual(f, in.values[f.Name], other.values[f.Name]) {
			return false
		}
	}

	return true
}

func fieldEqual(f *Field, a, b any) bool {
	switch f.Kind {
	case KindScalar:
		return scalarEqual(a, b)
	case KindNested:
		ai, _ := a.(*Instance)
		bi, _ := b.(*Instance)

		return ai.Equal(bi)
	case KindObjectList:
		al, _ := a.([]*Instance)
		bl, _ := b.([]*Instance)

		if len(al) != len(bl) {
			return false
		}

		for i := range al {
			if !al[i].Equal(bl[i]) {
				return false
			}
		}

		return true
	case KindScalarList:
		al, _ := a.([]any)
		bl, _ := b.([]any)

		if len(al) != len(bl) {
			return false
		}

		for i := range al {
			if !scalarEqual(al[i], bl[i]) {
				return false
			}
		}

		return true
	case KindMapping:
		am, _ := a.(map[string]string)
		bm, _ := b.(map[string]string)

		if len(am) != len(bm) {
			return false
		}

		for k, v := range am {
			if bv, ok := bm[k]; !ok || bv != v {
				return false
			}
		}

		return true
	}

	return false
}

func scalarTypeOK(typ ScalarType, v any) bool {
	switch typ {
	case String, Base64:
		_, ok := v.(string)

		return ok
	case Int:
		_, ok := v.(int)

		return ok
	case Bool:
		_, ok := v.(bool)

		return ok
	case DateTime:
		_, ok := v.(time.Time)

		return ok
	}

	return false
}

func (in *Instance) mustField(name string) *Field {
	f := in.schema.Field(name)
	if f == nil {
		panic(fmt.Sprintf("xmlcodec: schema %q has no field %q", in.schema.Name, name))
	}

	return f
}

func (in *Instance) mustKind(name string, kind FieldKind) *Field {
	f := in.mustField(name)
	if f.Kind != kind {
		panic(kindPanic(in.schema, name, kindName(kind)))
	}

	return f
}

func (in *Instance) mustScalar(name string, typ ScalarType) *Field {
	f := in.mustKind(name, KindScalar)
	if f.Scalar != typ {
		panic(kindPanic(in.schema, name, "scalar of the declared type"))
	}

	return f
}

func kindPanic(s *Schema, name, want string) string {
	return fmt.Sprintf("xmlcodec: field %q of schema %q is not a %s", name, s.Name, want)
}

func kindName(kind FieldKind) string {
	switch kind {
	case KindScalar:
		return "scalar"
	case KindNested:
		return "nested object"
	case KindObjectList:
		return "object list"
	case KindScalarList:
		return "scalar list"
	case KindMapping:
		return "mapping"
	}

	return "unknown kind"
}

package xmlcodec

// ScalarType selects the coercion applied between wire text and the typed
// value held by an Instance.
type ScalarType int

const (
	String ScalarType = iota
	Int
	Bool
	DateTime
	Base64
)

// FieldKind selects the (de)serialization dispatch for a field.
type FieldKind int

const (
	// KindScalar is a single leaf element holding typed text.
	KindScalar FieldKind = iota
	// KindNested is a single child object.
	KindNested
	// KindObjectList is an ordered run of child objects emitted as direct
	// siblings under the parent, with no wrapper element.
	KindObjectList
	// KindScalarList is an ordered run of typed leaf elements inside one
	// wrapper element.
	KindScalarList
	// KindMapping is a key/value map encoded as repeated pair elements
	// inside one wrapper element.
	KindMapping
)

// Field describes one wire element of a Schema. Fields are plain data; build
// them with the constructor helpers so wire names are derived consistently.
type Field struct {
	// Name is the snake_case field identifier used by callers.
	Name string
	// Wire is the element name on the wire. Derived from Name via WireName
	// when left empty at schema construction.
	Wire string
	Kind FieldKind

	// Scalar applies to KindScalar and KindScalarList.
	Scalar ScalarType
	// Schema applies to KindNested and KindObjectList.
	Schema *Schema
	// Variants, when non-empty, marks a KindNested field as polymorphic:
	// the concrete value is one of these sibling schemas and is emitted
	// under its own schema name rather than Wire.
	Variants []*Schema

	// ItemWire is the per-item element name for KindObjectList and
	// KindScalarList. Defaults to Schema.Name for object lists.
	ItemWire string
	// WrapperWire is the container element for KindScalarList and
	// KindMapping.
	WrapperWire string
	// PairWire, KeyWire and ValueWire shape KindMapping entries.
	PairWire  string
	KeyWire   string
	ValueWire string
}

// Schema is the immutable wire description of one resource kind. Schemas are
// built once at init, never mutated afterwards, and safe to share across
// goroutines.
type Schema struct {
	// Name is the canonical root element name for values of this schema.
	Name string
	// Fields in declaration order; serialization emits them in this order.
	Fields []Field

	byName map[string]*Field
}

// NewSchema builds a schema from an ordered field list, deriving any wire
// names that were not set explicitly.
func NewSchema(name string, fields ...Field) *Schema {
	s := &Schema{
		Name:   name,
		Fields: fields,
		byName: make(map[string]*Field, len(fields)),
	}

	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Wire == "" {
			f.Wire = WireName(f.Name)
		}

		if f.Kind == KindObjectList && f.ItemWire == "" && f.Schema != nil {
			f.ItemWire = f.Schema.Name
		}

		s.byName[f.Name] = f
	}

	return s
}

// Field returns the descriptor for the named field, or nil.
func (s *Schema) Field(name string) *Field {
	return s.byName[name]
}

// ScalarField declares a typed leaf element.
func ScalarField(name string, typ ScalarType) Field {
	return Field{Name: name, Kind: KindScalar, Scalar: typ}
}

// ScalarFieldAs is ScalarField with an explicit wire name, for the cases the
// name transform cannot produce.
func ScalarFieldAs(name, wire string, typ ScalarType) Field {
	return Field{Name: name, Wire: wire, Kind: KindScalar, Scalar: typ}
}

// NestedField declares a single child object of a fixed schema.
func NestedField(name string, schema *Schema) Field {
	return Field{Name: name, Kind: KindNested, Schema: schema}
}

// VariantField declares a polymorphic child object: the value is one of the
// given sibling schemas and travels under its concrete schema name. The set
// is closed; values outside it fail loudly rather than being guessed at.
func VariantField(name string, variants ...*Schema) Field {
	return Field{Name: name, Kind: KindNested, Variants: variants}
}

// ObjectListField declares an ordered, unwrapped run of child objects. An
// empty itemWire defaults to the element schema's name.
func ObjectListField(name string, schema *Schema, itemWire string) Field {
	return Field{Name: name, Kind: KindObjectList, Schema: schema, ItemWire: itemWire}
}

// ScalarListField declares an ordered run of typed leaf elements inside a
// wrapper element.
func ScalarListField(name string, typ ScalarType, wrapperWire, itemWire string) Field {
	return Field{
		Name:        name,
		Kind:        KindScalarList,
		Scalar:      typ,
		WrapperWire: wrapperWire,
		ItemWire:    itemWire,
	}
}

// MappingField declares a key/value map encoded as repeated pair elements
// inside a wrapper element.
func MappingField(name, wrapperWire, pairWire, keyWire, valueWire string) Field {
	return Field{
		Name:        name,
		Kind:        KindMapping,
		WrapperWire: wrapperWire,
		PairWire:    pairWire,
		KeyWire:     keyWire,
		ValueWire:   valueWire,
	}
}

// variant returns the variant schema with the given name, or nil.
func (f *Field) variant(name string) *Schema {
	for _, v := range f.Variants {
		if v.Name == name {
			return v
		}
	}

	return nil
}

// allowsVariant reports whether the schema is in the field's closed set.
func (f *Field) allowsVariant(schema *Schema) bool {
	for _, v := range f.Variants {
		if v == schema {
			return true
		}
	}

	return false
}

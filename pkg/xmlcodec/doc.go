// Package xmlcodec is a schema-driven XML codec for the legacy management
// API wire format: a reflection-free serializer and deserializer that
// round-trips deeply nested, polymorphic, collection-bearing objects without
// per-type parsing code.
//
// # Overview
//
// A Schema declares, per resource kind, an ordered list of Fields. Each
// field carries a container kind (scalar, nested object, unwrapped object
// list, wrapped scalar list, or key/value mapping) and, for scalars, a typed
// coercion (string, int, bool, datetime, base64). Schemas are built once at
// init, are immutable, and may be shared freely across goroutines.
//
// Wire element names are derived from snake_case field identifiers by
// WireName, which applies an exception table (acronyms and header-style
// names) ahead of the generic PascalCase rule. The mapping is one-way:
// decoding always walks the target schema's fields rather than guessing
// field names from tags.
//
// # Entry points
//
// The codec exposes three wire operations:
//
//	inst, err := xmlcodec.Deserialize(body, schema)   // response body → Instance
//	body, err := xmlcodec.Marshal(inst)               // Instance → request body
//	doc, err := xmlcodec.BuildDocument(root, fields, props) // action documents
//
// Deserialize tolerates a root tag that differs from the schema name and
// treats missing optional elements as absence, never as an error. Marshal
// omits absent fields, so sparse request bodies are first class. For any
// instance built from the documented container kinds,
// Deserialize(Marshal(x)) equals x.
//
// # Errors
//
// Wire-level failures are typed: MalformedXMLError for input that does not
// parse, TypeMismatchError when scalar text cannot be coerced (the codec
// never silently coerces), and AmbiguousTypeError when a polymorphic value
// falls outside its closed variant set. Helpers IsMalformedXML,
// IsTypeMismatch, and IsAmbiguousType branch on them. Misusing a schema from
// code (unknown field names, wrong-kind access) panics instead; that is a
// programming error, not a wire condition.
//
// # Concurrency
//
// Every Deserialize or New call allocates a fresh value graph; no containers
// are shared between instances and the package holds no mutable global
// state. Concurrent calls on distinct instances are safe without locking.
package xmlcodec

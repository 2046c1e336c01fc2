package xmlcodec

import (
	"github.com/beevik/etree"
)

// Deserialize parses an XML response body and walks it in lock-step with
// schema, returning a freshly allocated instance.
//
// The root element's tag is allowed to differ from the schema's canonical
// name; decoding proceeds from whatever root arrived. Missing optional
// elements are never an error. Malformed input and unconvertible scalar text
// are fatal.
func Deserialize(data []byte, schema *Schema) (*Instance, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &MalformedXMLError{Err: err}
	}

	root := doc.Root()
	if root == nil {
		return nil, &MalformedXMLError{Err: ErrNoRootElement}
	}

	return decodeElement(root, schema)
}

func decodeElement(el *etree.Element, schema *Schema) (*Instance, error) {
	in := New(schema)

	for i := range schema.Fields {
		f := &schema.Fields[i]

		var err error

		switch f.Kind {
		case KindScalar:
			err = decodeScalar(el, f, in)
		case KindNested:
			err = decodeNested(el, f, in)
		case KindObjectList:
			err = decodeObjectList(el, f, in)
		case KindScalarList:
			err = decodeScalarList(el, f, in)
		case KindMapping:
			decodeMapping(el, f, in)
		}

		if err != nil {
			return nil, err
		}
	}

	return in, nil
}

func decodeScalar(el *etree.Element, f *Field, in *Instance) error {
	child := el.SelectElement(f.Wire)
	if child == nil {
		return nil
	}

	v, err := parseScalar(f.Scalar, child.Text())
	if err != nil {
		return &TypeMismatchError{Field: f.Name, Raw: child.Text(), Err: err}
	}

	in.values[f.Name] = v
	in.set[f.Name] = true

	return nil
}

func decodeNested(el *etree.Element, f *Field, in *Instance) error {
	if len(f.Variants) > 0 {
		return decodeVariant(el, f, in)
	}

	child := el.SelectElement(f.Wire)
	if child == nil {
		return nil
	}

	nested, err := decodeElement(child, f.Schema)
	if err != nil {
		return err
	}

	in.values[f.Name] = nested
	in.set[f.Name] = true

	return nil
}

// decodeVariant resolves a polymorphic nested field. The concrete value
// travels under its own schema name, so the variant names are probed in
// declaration order. An element carrying the field's declared wire name
// instead of a variant name cannot be resolved and fails loudly.
func decodeVariant(el *etree.Element, f *Field, in *Instance) error {
	for _, variant := range f.Variants {
		child := el.SelectElement(variant.Name)
		if child == nil {
			continue
		}

		nested, err := decodeElement(child, variant)
		if err != nil {
			return err
		}

		in.values[f.Name] = nested
		in.set[f.Name] = true

		return nil
	}

	if el.SelectElement(f.Wire) != nil {
		return &AmbiguousTypeError{Field: f.Name}
	}

	return nil
}

func decodeObjectList(el *etree.Element, f *Field, in *Instance) error {
	// Items are direct repeated children of the current node; there is no
	// wrapper element for object lists.
	list, _ := in.values[f.Name].([]*Instance)

	for _, child := range el.ChildElements() {
		if child.Tag != f.ItemWire {
			continue
		}

		item, err := decodeElement(child, f.Schema)
		if err != nil {
			return err
		}

		list = append(list, item)
	}

	if len(list) > 0 {
		in.values[f.Name] = list
		in.set[f.Name] = true
	}

	return nil
}

func decodeScalarList(el *etree.Element, f *Field, in *Instance) error {
	wrapper := el.SelectElement(f.WrapperWire)
	if wrapper == nil {
		return nil
	}

	list, _ := in.values[f.Name].([]any)

	for _, child := range wrapper.ChildElements() {
		if child.Tag != f.ItemWire {
			continue
		}

		v, err := parseScalar(f.Scalar, child.Text())
		if err != nil {
			return &TypeMismatchError{Field: f.Name, Raw: child.Text(), Err: err}
		}

		list = append(list, v)
	}

	in.values[f.Name] = list
	in.set[f.Name] = true

	return nil
}

func decodeMapping(el *etree.Element, f *Field, in *Instance) {
	wrapper := el.SelectElement(f.WrapperWire)
	if wrapper == nil {
		return
	}

	m, _ := in.values[f.Name].(map[string]string)

	for _, pair := range wrapper.ChildElements() {
		if pair.Tag != f.PairWire {
			continue
		}

		keyEl := pair.SelectElement(f.KeyWire)
		if keyEl == nil {
			continue
		}

		value := ""
		if valueEl := pair.SelectElement(f.ValueWire); valueEl != nil {
			value = valueEl.Text()
		}

		// Duplicate keys resolve last-write-wins in document order.
		m[keyEl.Text()] = value
	}

	in.set[f.Name] = true
}

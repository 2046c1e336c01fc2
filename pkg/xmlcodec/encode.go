package xmlcodec

import (
	"sort"

	"github.com/beevik/etree"
)

// Marshal serializes an instance as a complete element named after its
// schema. Absent fields are omitted, so sparse request bodies come out
// sparse. Deserialize(Marshal(x)) yields a value equal to x.
func Marshal(in *Instance) ([]byte, error) {
	el, err := encodeElement(in, in.schema.Name)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.SetRoot(el)

	return doc.WriteToBytes()
}

// Serialize renders the instance's fields as an XML fragment without the
// enclosing root element, for embedding inside hand-assembled documents.
func Serialize(in *Instance) (string, error) {
	el, err := encodeElement(in, in.schema.Name)
	if err != nil {
		return "", err
	}

	doc := etree.NewDocument()

	for _, child := range el.ChildElements() {
		doc.AddChild(child.Copy())
	}

	return doc.WriteToString()
}

func encodeElement(in *Instance, tag string) (*etree.Element, error) {
	el := etree.NewElement(tag)

	for i := range in.schema.Fields {
		f := &in.schema.Fields[i]
		if !in.set[f.Name] {
			continue
		}

		var err error

		switch f.Kind {
		case KindScalar:
			err = encodeScalar(el, f, in.values[f.Name])
		case KindNested:
			err = encodeNested(el, f, in.values[f.Name])
		case KindObjectList:
			err = encodeObjectList(el, f, in.values[f.Name])
		case KindScalarList:
			err = encodeScalarList(el, f, in.values[f.Name])
		case KindMapping:
			encodeMapping(el, f, in.values[f.Name])
		}

		if err != nil {
			return nil, err
		}
	}

	return el, nil
}

func encodeScalar(parent *etree.Element, f *Field, v any) error {
	text, err := formatScalar(f.Scalar, v)
	if err != nil {
		return &TypeMismatchError{Field: f.Name, Raw: text, Err: err}
	}

	parent.CreateElement(f.Wire).SetText(text)

	return nil
}

func encodeNested(parent *etree.Element, f *Field, v any) error {
	child, _ := v.(*Instance)
	if child == nil {
		return nil
	}

	tag := f.Wire

	if len(f.Variants) > 0 {
		// Polymorphic values travel under their concrete schema name.
		if !f.allowsVariant(child.schema) {
			return &AmbiguousTypeError{Field: f.Name, Schema: child.schema.Name}
		}

		tag = child.schema.Name
	}

	el, err := encodeElement(child, tag)
	if err != nil {
		return err
	}

	parent.AddChild(el)

	return nil
}

func encodeObjectList(parent *etree.Element, f *Field, v any) error {
	list, _ := v.([]*Instance)

	// Each item is a direct sibling under the parent; no wrapper element.
	for _, item := range list {
		el, err := encodeElement(item, f.ItemWire)
		if err != nil {
			return err
		}

		parent.AddChild(el)
	}

	return nil
}

func encodeScalarList(parent *etree.Element, f *Field, v any) error {
	list, _ := v.([]any)
	wrapper := parent.CreateElement(f.WrapperWire)

	for _, item := range list {
		text, err := formatScalar(f.Scalar, item)
		if err != nil {
			return &TypeMismatchError{Field: f.Name, Raw: text, Err: err}
		}

		wrapper.CreateElement(f.ItemWire).SetText(text)
	}

	return nil
}

func encodeMapping(parent *etree.Element, f *Field, v any) {
	m, _ := v.(map[string]string)
	wrapper := parent.CreateElement(f.WrapperWire)

	// Entry order is not meaningful on the wire; sort for stable output.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		pair := wrapper.CreateElement(f.PairWire)
		pair.CreateElement(f.KeyWire).SetText(k)
		pair.CreateElement(f.ValueWire).SetText(m[k])
	}
}

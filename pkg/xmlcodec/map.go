package xmlcodec

import (
	"fmt"
	"time"
)

// Map exports the populated fields as a plain map keyed by field name,
// suitable for yaml/json output. DateTime scalars are rendered in the wire
// layout; Base64 scalars appear in decoded form. Polymorphic nested values
// export as a single-key map naming the concrete variant.
func (in *Instance) Map() map[string]any {
	out := make(map[string]any)

	for i := range in.schema.Fields {
		f := &in.schema.Fields[i]
		if !in.set[f.Name] {
			continue
		}

		switch f.Kind {
		case KindScalar:
			out[f.Name] = exportScalar(in.values[f.Name])
		case KindNested:
			child, _ := in.values[f.Name].(*Instance)
			if child == nil {
				continue
			}

			if len(f.Variants) > 0 {
				out[f.Name] = map[string]any{child.schema.Name: child.Map()}
			} else {
				out[f.Name] = child.Map()
			}
		case KindObjectList:
			list, _ := in.values[f.Name].([]*Instance)
			items := make([]any, len(list))

			for j, item := range list {
				items[j] = item.Map()
			}

			out[f.Name] = items
		case KindScalarList:
			list, _ := in.values[f.Name].([]any)
			items := make([]any, len(list))

			for j, item := range list {
				items[j] = exportScalar(item)
			}

			out[f.Name] = items
		case KindMapping:
			m, _ := in.values[f.Name].(map[string]string)
			copied := make(map[string]string, len(m))

			for k, v := range m {
				copied[k] = v
			}

			out[f.Name] = copied
		}
	}

	return out
}

func exportScalar(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format(dateTimeEmitLayout)
	}

	return v
}

// FromMap builds an instance of schema from a plain map as produced by Map
// or decoded from yaml/json. Unknown keys and uncoercible values are errors.
func FromMap(schema *Schema, data map[string]any) (*Instance, error) {
	in := New(schema)

	for i := range schema.Fields {
		f := &schema.Fields[i]

		raw, ok := data[f.Name]
		if !ok {
			continue
		}

		if err := importField(in, f, raw); err != nil {
			return nil, err
		}
	}

	for name := range data {
		if schema.Field(name) == nil {
			return nil, fmt.Errorf("%w: %q in schema %q", ErrUnknownField, name, schema.Name)
		}
	}

	return in, nil
}

func importField(in *Instance, f *Field, raw any) error {
	switch f.Kind {
	case KindScalar:
		v, err := importScalar(f.Name, f.Scalar, raw)
		if err != nil {
			return err
		}

		in.values[f.Name] = v
		in.set[f.Name] = true
	case KindNested:
		return importNested(in, f, raw)
	case KindObjectList:
		items, ok := raw.([]any)
		if !ok {
			return &TypeMismatchError{Field: f.Name, Raw: fmt.Sprintf("%v", raw), Err: ErrNotMap}
		}

		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				return &TypeMismatchError{Field: f.Name, Raw: fmt.Sprintf("%v", item), Err: ErrNotMap}
			}

			child, err := FromMap(f.Schema, m)
			if err != nil {
				return err
			}

			in.AppendObject(f.Name, child)
		}
	case KindScalarList:
		items, ok := raw.([]any)
		if !ok {
			return &TypeMismatchError{Field: f.Name, Raw: fmt.Sprintf("%v", raw), Err: ErrKindMismatch}
		}

		for _, item := range items {
			v, err := importScalar(f.Name, f.Scalar, item)
			if err != nil {
				return err
			}

			list, _ := in.values[f.Name].([]any)
			in.values[f.Name] = append(list, v)
			in.set[f.Name] = true
		}
	case KindMapping:
		m, ok := raw.(map[string]any)
		if !ok {
			return &TypeMismatchError{Field: f.Name, Raw: fmt.Sprintf("%v", raw), Err: ErrNotMap}
		}

		for k, v := range m {
			s, ok := v.(string)
			if !ok {
				s = fmt.Sprintf("%v", v)
			}

			in.Put(f.Name, k, s)
		}
	}

	return nil
}

func importNested(in *Instance, f *Field, raw any) error {
	m, ok := raw.(map[string]any)
	if !ok {
		return &TypeMismatchError{Field: f.Name, Raw: fmt.Sprintf("%v", raw), Err: ErrNotMap}
	}

	if len(f.Variants) == 0 {
		child, err := FromMap(f.Schema, m)
		if err != nil {
			return err
		}

		return in.SetNested(f.Name, child)
	}

	// Polymorphic: a single-key map naming the concrete variant.
	if len(m) != 1 {
		return &AmbiguousTypeError{Field: f.Name}
	}

	for name, body := range m {
		variant := f.variant(name)
		if variant == nil {
			return &AmbiguousTypeError{Field: f.Name, Schema: name}
		}

		vm, ok := body.(map[string]any)
		if !ok {
			return &TypeMismatchError{Field: f.Name, Raw: fmt.Sprintf("%v", body), Err: ErrNotMap}
		}

		child, err := FromMap(variant, vm)
		if err != nil {
			return err
		}

		return in.SetNested(f.Name, child)
	}

	return nil
}

func importScalar(field string, typ ScalarType, raw any) (any, error) {
	switch typ {
	case String, Base64:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case Int:
		switch n := raw.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		}
	case Bool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case DateTime:
		switch t := raw.(type) {
		case time.Time:
			return t, nil
		case string:
			v, err := parseScalar(DateTime, t)
			if err != nil {
				return nil, &TypeMismatchError{Field: field, Raw: t, Err: err}
			}

			return v, nil
		}
	}

	return nil, &TypeMismatchError{Field: field, Raw: fmt.Sprintf("%v", raw), Err: ErrKindMismatch}
}

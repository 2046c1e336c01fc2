package xmlcodec

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/beevik/etree"
)

// Namespaces stamped on every full request document.
const (
	SchemaInstanceNamespace = "http://www.w3.org/2001/XMLSchema-instance"
	ManagementNamespace     = "http://schemas.microsoft.com/windowsazure"
)

// DocField is one pre-wire-named element of an action document. A nil Value
// drops the element entirely; Convert, when set, overrides the default
// stringification.
type DocField struct {
	Name    string
	Value   any
	Convert func(any) string
}

// Base64Text is a DocField converter that base64-encodes a string value,
// used for label-style fields the API requires encoded.
func Base64Text(v any) string {
	s, _ := v.(string)

	return base64.StdEncoding.EncodeToString([]byte(s))
}

// BuildDocument assembles a full UTF-8 request document: the XML
// declaration, a namespaced root element, one child element per present
// field, and an ExtendedProperties block when extended is non-empty.
//
// This is the primitive for action/operation request bodies that are simpler
// than a full schema round-trip.
func BuildDocument(root string, fields []DocField, extended map[string]string) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	rootEl := doc.CreateElement(root)
	rootEl.CreateAttr("xmlns:i", SchemaInstanceNamespace)
	rootEl.CreateAttr("xmlns", ManagementNamespace)

	appendDocFields(rootEl, fields)

	if len(extended) > 0 {
		appendExtendedProperties(rootEl, extended)
	}

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("writing document: %w", err)
	}

	return out, nil
}

// DataToXML renders a run of document fields as a bare fragment, for
// embedding inside larger hand-assembled bodies.
func DataToXML(fields []DocField) (string, error) {
	doc := etree.NewDocument()
	appendDocFields(&doc.Element, fields)

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("writing fragment: %w", err)
	}

	return out, nil
}

func appendDocFields(parent *etree.Element, fields []DocField) {
	for _, f := range fields {
		text, ok := docFieldText(f)
		if !ok {
			continue
		}

		parent.CreateElement(f.Name).SetText(text)
	}
}

func docFieldText(f DocField) (string, bool) {
	if f.Value == nil {
		return "", false
	}

	if f.Convert != nil {
		return f.Convert(f.Value), true
	}

	switch v := f.Value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case time.Time:
		return v.Format(dateTimeEmitLayout), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

func appendExtendedProperties(parent *etree.Element, extended map[string]string) {
	wrapper := parent.CreateElement("ExtendedProperties")

	keys := make([]string, 0, len(extended))
	for k := range extended {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		prop := wrapper.CreateElement("ExtendedProperty")
		prop.CreateElement("Name").SetText(k)
		prop.CreateElement("Value").SetText(extended[k])
	}
}

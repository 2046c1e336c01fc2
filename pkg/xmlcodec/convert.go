package xmlcodec

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateTimeLayout is the wire format for DateTime scalars. The fractional
// part is optional on input; output always carries six digits so that
// serialize and parse stay symmetric.
const (
	dateTimeLayout     = "2006-01-02T15:04:05"
	dateTimeEmitLayout = "2006-01-02T15:04:05.000000"
)

// parseScalar converts wire text to the typed in-memory value for typ.
// Base64 text is decoded to its UTF-8 form before storing.
func parseScalar(typ ScalarType, text string) (any, error) {
	switch typ {
	case String:
		return text, nil
	case Int:
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("parsing integer: %w", err)
		}

		return n, nil
	case Bool:
		// Anything but an explicit "false" counts as true.
		return !strings.EqualFold(strings.TrimSpace(text), "false"), nil
	case DateTime:
		// time.Parse accepts an optional fractional second after the
		// seconds field even when the layout omits it.
		t, err := time.Parse(dateTimeLayout, strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("parsing datetime: %w", err)
		}

		return t, nil
	case Base64:
		b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("decoding base64: %w", err)
		}

		return string(b), nil
	default:
		return nil, fmt.Errorf("%w: scalar type %d", ErrKindMismatch, typ)
	}
}

// formatScalar renders a typed value back to its wire text, using the same
// canonical form the parse path accepts.
func formatScalar(typ ScalarType, v any) (string, error) {
	switch typ {
	case String:
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("%w: want string, have %T", ErrKindMismatch, v)
		}

		return s, nil
	case Int:
		n, ok := v.(int)
		if !ok {
			return "", fmt.Errorf("%w: want int, have %T", ErrKindMismatch, v)
		}

		return strconv.Itoa(n), nil
	case Bool:
		b, ok := v.(bool)
		if !ok {
			return "", fmt.Errorf("%w: want bool, have %T", ErrKindMismatch, v)
		}

		return strconv.FormatBool(b), nil
	case DateTime:
		t, ok := v.(time.Time)
		if !ok {
			return "", fmt.Errorf("%w: want time.Time, have %T", ErrKindMismatch, v)
		}

		return t.Format(dateTimeEmitLayout), nil
	case Base64:
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("%w: want string, have %T", ErrKindMismatch, v)
		}

		return base64.StdEncoding.EncodeToString([]byte(s)), nil
	default:
		return "", fmt.Errorf("%w: scalar type %d", ErrKindMismatch, typ)
	}
}

// scalarEqual compares two stored scalar values. Times compare by instant.
func scalarEqual(a, b any) bool {
	at, aok := a.(time.Time)
	bt, bok := b.(time.Time)

	if aok && bok {
		return at.Equal(bt)
	}

	return a == b
}

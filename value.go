package flagtory

import (
	"fmt"
	"strconv"
)

// Scalar is the set of value types a flag may hold.
type Scalar interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string
}

// Kind identifies the concrete scalar type stored in an [Entry].
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindString:  "string",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}

func kindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case int:
		return KindInt
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint:
		return KindUint
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case string:
		return KindString
	}
	return KindInvalid
}

// parseKind converts s into a value of the given kind. The dynamic type of the result always
// matches the Go type named by k.
func parseKind(k Kind, s string) (any, error) {
	switch k {
	case KindBool:
		return strconv.ParseBool(s)
	case KindInt:
		v, err := strconv.ParseInt(s, 10, strconv.IntSize)
		return int(v), err
	case KindInt8:
		v, err := strconv.ParseInt(s, 10, 8)
		return int8(v), err
	case KindInt16:
		v, err := strconv.ParseInt(s, 10, 16)
		return int16(v), err
	case KindInt32:
		v, err := strconv.ParseInt(s, 10, 32)
		return int32(v), err
	case KindInt64:
		return strconv.ParseInt(s, 10, 64)
	case KindUint:
		v, err := parseUint(s, strconv.IntSize)
		return uint(v), err
	case KindUint8:
		v, err := parseUint(s, 8)
		return uint8(v), err
	case KindUint16:
		v, err := parseUint(s, 16)
		return uint16(v), err
	case KindUint32:
		v, err := parseUint(s, 32)
		return uint32(v), err
	case KindUint64:
		return parseUint(s, 64)
	case KindFloat32:
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), err
	case KindFloat64:
		return strconv.ParseFloat(s, 64)
	case KindString:
		return s, nil
	}
	return nil, fmt.Errorf("unsupported kind %s", k)
}

// parseUint accepts one leading plus sign, which strconv.ParseUint rejects.
func parseUint(s string, bitSize int) (uint64, error) {
	if len(s) > 1 && s[0] == '+' {
		s = s[1:]
	}
	return strconv.ParseUint(s, 10, bitSize)
}

// value is the typed storage behind an Entry. The pointer is the caller's handle and is never
// replaced after registration.
type value[T Scalar] struct {
	p    *T
	kind Kind
}

func newValue[T Scalar](p *T) *value[T] {
	return &value[T]{p: p, kind: kindOf[T]()}
}

func (v *value[T]) Kind() Kind { return v.kind }

func (v *value[T]) Set(s string) error {
	parsed, err := parseKind(v.kind, s)
	if err != nil {
		return err
	}
	*v.p = parsed.(T)
	return nil
}

func (v *value[T]) String() string {
	if v == nil || v.p == nil {
		return ""
	}
	return fmt.Sprint(*v.p)
}

func (v *value[T]) Get() any { return *v.p }

func (v *value[T]) IsBoolFlag() bool { return v.kind == KindBool }

// toggle inverts a boolean value and reports false for every other kind.
func (v *value[T]) toggle() bool {
	b, ok := any(v.p).(*bool)
	if !ok {
		return false
	}
	*b = !*b
	return true
}

type flagValue interface {
	Kind() Kind
	Set(string) error
	String() string
	Get() any
	IsBoolFlag() bool
	toggle() bool
}

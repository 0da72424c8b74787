package log

// DefaultErrorFieldName is the key of fields built by Error.
const DefaultErrorFieldName = "error"

// FieldType tells which payload of a Field is set.
type FieldType int

const (
	FieldTypeString FieldType = iota
	FieldTypeBoolean
	FieldTypeUnsigned
	FieldTypeError
	// FieldTypeAny carries a value the sink serializes by reflection.
	FieldTypeAny
)

// Field stores one structured logging field.
type Field struct {
	key   string
	ftype FieldType
	str   string
	num   uint64
	iface any
}

func (f Field) Key() string { return f.key }

func (f Field) Type() FieldType { return f.ftype }

func (f Field) String() string { return f.str }

func (f Field) Bool() bool { return f.num != 0 }

func (f Field) Unsigned() uint64 { return f.num }

// Error returns nil for fields built from a nil error.
func (f Field) Error() error {
	err, _ := f.iface.(error)

	return err
}

func (f Field) Interface() any { return f.iface }

func String(key, value string) Field {
	return Field{key: key, ftype: FieldTypeString, str: value}
}

func Bool(key string, value bool) Field {
	field := Field{key: key, ftype: FieldTypeBoolean}
	if value {
		field.num = 1
	}

	return field
}

func UInt32(key string, value uint32) Field {
	return Field{key: key, ftype: FieldTypeUnsigned, num: uint64(value)}
}

// Error builds a field keyed DefaultErrorFieldName.
func Error(value error) Field {
	return Field{key: DefaultErrorFieldName, ftype: FieldTypeError, iface: value}
}

// Any picks the typed constructor matching value, falling back to FieldTypeAny.
func Any(key string, value any) Field {
	switch val := value.(type) {
	case string:
		return String(key, val)
	case bool:
		return Bool(key, val)
	case uint32:
		return UInt32(key, val)
	case error:
		return Field{key: key, ftype: FieldTypeError, iface: val}
	default:
		return Field{key: key, ftype: FieldTypeAny, iface: value}
	}
}

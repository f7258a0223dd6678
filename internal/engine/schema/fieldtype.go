package schema

// FieldType enumerates the value kinds a field can declare. The set is
// closed: the formatter and the form session switch over it exhaustively,
// so adding a kind is a compile-visible change.
type FieldType int

const (
	TypeText FieldType = iota
	TypeNumber
	TypeBoolean
	TypeDate
	TypeEnum
	TypeImage
	TypeEntityRef
	// TypeRefList is an array of references to another entity.
	TypeRefList
	// TypeValueList is an array of simple values (text, number, ...).
	TypeValueList
	TypeObject
)

var fieldTypeNames = map[FieldType]string{
	TypeText:      "text",
	TypeNumber:    "number",
	TypeBoolean:   "boolean",
	TypeDate:      "date",
	TypeEnum:      "enum",
	TypeImage:     "image",
	TypeEntityRef: "entity_ref",
	TypeRefList:   "ref_list",
	TypeValueList: "value_list",
	TypeObject:    "object",
}

func (t FieldType) String() string {
	if s, ok := fieldTypeNames[t]; ok {
		return s
	}
	return "text"
}

// MarshalText makes FieldType readable in the /schema endpoint payloads.
func (t FieldType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Zero returns the zero value used when a new item of this type is added
// to a value list.
func (t FieldType) Zero() any {
	switch t {
	case TypeText, TypeEnum:
		return ""
	case TypeNumber:
		return float64(0)
	case TypeBoolean:
		return false
	case TypeDate:
		return nil
	case TypeImage, TypeEntityRef, TypeRefList, TypeValueList, TypeObject:
		return nil
	}
	return nil
}

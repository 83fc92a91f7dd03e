package value

// Kind discriminates the payload of a Value.
type Kind int

const (
	NullKind Kind = iota
	NumberKind
	StringKind
	BoolKind
	RecordKind
	ListKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "Null",
		NumberKind: "Number",
		StringKind: "String",
		BoolKind:   "Bool",
		RecordKind: "Record",
		ListKind:   "List",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// IsLeaf reports whether the kind carries no nested values.
func (k Kind) IsLeaf() bool {
	switch k {
	case RecordKind, ListKind:
		return false
	default:
		return true
	}
}

package form

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	KindString ValueKind = iota
	KindStringList
	KindBool
)

// Value is the tagged variant a form-state key may hold. Widgets write
// exactly one variant per key; reading the wrong variant yields the
// zero value rather than a coercion.
type Value struct {
	Kind ValueKind
	str  string
	list []string
	b    bool
}

func String(s string) Value {
	return Value{Kind: KindString, str: s}
}

func StringList(items []string) Value {
	return Value{Kind: KindStringList, list: items}
}

func Bool(b bool) Value {
	return Value{Kind: KindBool, b: b}
}

// Str returns the string variant, or "" if the value holds another kind.
func (v Value) Str() string {
	if v.Kind != KindString {
		return ""
	}
	return v.str
}

// List returns the list variant, or nil for other kinds.
func (v Value) List() []string {
	if v.Kind != KindStringList {
		return nil
	}
	return v.list
}

// Bool returns the boolean variant, or false for other kinds.
func (v Value) Bool() bool {
	if v.Kind != KindBool {
		return false
	}
	return v.b
}

// Clone deep-copies the value. Lists are copied by value so a clone can
// be mutated without touching the original.
func (v Value) Clone() Value {
	if v.Kind == KindStringList && v.list != nil {
		c := make([]string, len(v.list))
		copy(c, v.list)
		return Value{Kind: KindStringList, list: c}
	}
	return v
}

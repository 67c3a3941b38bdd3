package jsonedit

import (
	"encoding/json"
	"strconv"
)

// Kind discriminates the JSON value variants.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "<unknown kind>"
}

// Value is one JSON value: null, boolean, number, string, array or object.
// Objects keep their keys in insertion order (Keys and Vals are parallel).
// Numbers carry the original literal so document text round-trips without
// float formatting drift.
type Value struct {
	Kind  Kind
	Bool  bool
	Num   json.Number
	Str   string
	Items []*Value
	Keys  []string
	Vals  []*Value
}

func Null() *Value { return &Value{Kind: KindNull} }

func Bool(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

func Number(n float64) *Value {
	return &Value{Kind: KindNumber, Num: json.Number(strconv.FormatFloat(n, 'g', -1, 64))}
}

// NumberLit wraps a numeric literal verbatim, e.g. "30" or "1e-9".
func NumberLit(lit string) *Value { return &Value{Kind: KindNumber, Num: json.Number(lit)} }

func String(s string) *Value { return &Value{Kind: KindString, Str: s} }

func Array(items ...*Value) *Value { return &Value{Kind: KindArray, Items: items} }

func Object() *Value { return &Value{Kind: KindObject} }

// Field returns the value stored under key, or false when v is not an object
// or the key is absent.
func (v *Value) Field(key string) (*Value, bool) {
	if v == nil || v.Kind != KindObject {
		return nil, false
	}
	for i, k := range v.Keys {
		if k == key {
			return v.Vals[i], true
		}
	}
	return nil, false
}

// SetField stores val under key, keeping the key's existing position or
// appending when new.
func (v *Value) SetField(key string, val *Value) {
	for i, k := range v.Keys {
		if k == key {
			v.Vals[i] = val
			return
		}
	}
	v.Keys = append(v.Keys, key)
	v.Vals = append(v.Vals, val)
}

// DeleteField removes key and reports whether it was present.
func (v *Value) DeleteField(key string) bool {
	if v == nil || v.Kind != KindObject {
		return false
	}
	for i, k := range v.Keys {
		if k == key {
			v.Keys = append(v.Keys[:i], v.Keys[i+1:]...)
			v.Vals = append(v.Vals[:i], v.Vals[i+1:]...)
			return true
		}
	}
	return false
}

// Len is the element count for arrays and the key count for objects.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.Kind {
	case KindArray:
		return len(v.Items)
	case KindObject:
		return len(v.Keys)
	}
	return 0
}

// Copy returns a shallow copy: a fresh container whose children are shared
// with v. This is the copy-on-write building block used by Set.
func (v *Value) Copy() *Value {
	if v == nil {
		return Null()
	}
	cp := *v
	switch v.Kind {
	case KindArray:
		cp.Items = append([]*Value(nil), v.Items...)
	case KindObject:
		cp.Keys = append([]string(nil), v.Keys...)
		cp.Vals = append([]*Value(nil), v.Vals...)
	}
	return &cp
}

// Equal reports deep structural equality. Object comparison is order
// sensitive, matching the ordered model.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == nil && o == nil
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindNumber:
		return numberEqual(v.Num, o.Num)
	case KindString:
		return v.Str == o.Str
	case KindArray:
		if len(v.Items) != len(o.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(o.Items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.Keys) != len(o.Keys) {
			return false
		}
		for i := range v.Keys {
			if v.Keys[i] != o.Keys[i] || !v.Vals[i].Equal(o.Vals[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func numberEqual(a, b json.Number) bool {
	if a == b {
		return true
	}
	af, aerr := a.Float64()
	bf, berr := b.Float64()
	return aerr == nil && berr == nil && af == bf
}

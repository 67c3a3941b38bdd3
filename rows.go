package jsonedit

// Row is one displayed row of a node: a keyed scalar child, or the synthetic
// single value standing for the node itself (no key). Type mirrors the
// value's kind; container rows are rendered as nested nodes by the view and
// excluded from the flat object form.
type Row struct {
	Key    string
	HasKey bool
	Value  *Value
	Type   Kind
}

func KeyedRow(key string, v *Value) Row {
	return Row{Key: key, HasKey: true, Value: v, Type: kindOf(v)}
}

func BareRow(v *Value) Row {
	return Row{Value: v, Type: kindOf(v)}
}

func kindOf(v *Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind
}

// Node is the selected-node descriptor handed over by the view layer: where
// the node lives and what rows it currently displays.
type Node struct {
	Path Path
	Rows []Row
}

// bareValue reports the single-synthetic-row shape: the node stands for one
// whole value rather than an object's scalar children.
func (n *Node) bareValue() bool {
	return len(n.Rows) == 1 && !n.Rows[0].HasKey
}

// Normalize renders rows as the editable JSON text. No rows yields "{}"; a
// single bare row yields that value directly; otherwise the keyed
// non-container rows form an object, serialized with 2-space indentation.
func Normalize(rows []Row) (string, error) {
	if len(rows) == 0 {
		return "{}", nil
	}
	if len(rows) == 1 && !rows[0].HasKey {
		b, err := EncodeIndent(rows[0].Value)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	obj := Object()
	for _, r := range rows {
		if !r.HasKey || r.Type == KindArray || r.Type == KindObject {
			continue
		}
		obj.SetField(r.Key, r.Value)
	}
	b, err := EncodeIndent(obj)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

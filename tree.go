package jsonedit

// Get resolves path against root and returns the value there, or false when
// any step fails to resolve: a null or missing container, an absent key, an
// index out of range, or a container of the wrong kind. The empty path
// returns root itself.
func Get(root *Value, path Path) (*Value, bool) {
	cur := root
	for _, seg := range path {
		if cur == nil || cur.Kind == KindNull {
			return nil, false
		}
		if seg.KeySeg {
			child, ok := cur.Field(seg.Key)
			if !ok {
				return nil, false
			}
			cur = child
			continue
		}
		if cur.Kind != KindArray || seg.Index < 0 || seg.Index >= len(cur.Items) {
			return nil, false
		}
		cur = cur.Items[seg.Index]
	}
	return cur, true
}

// Set returns a new root with v installed at path. Every container on the
// way to the target is a fresh shallow copy, so the original root and all of
// its branches are left untouched; unchanged subtrees are shared between old
// and new root. Missing or null intermediate slots are materialized as an
// array when the following segment is an index and as an object otherwise.
// A non-container root (e.g. null) likewise becomes the container the first
// segment calls for. The empty path replaces the root outright.
func Set(root *Value, path Path, v *Value) *Value {
	if len(path) == 0 {
		return v
	}
	newRoot := copyForSegment(root, path[0])
	cur := newRoot
	for i := 0; i < len(path)-1; i++ {
		seg, following := path[i], path[i+1]
		child := copyForSegment(childAt(cur, seg), following)
		place(cur, seg, child)
		cur = child
	}
	place(cur, path[len(path)-1], v)
	return newRoot
}

// copyForSegment returns a container ready to hold seg without aliasing v: a
// shallow copy when v already is the right container kind, otherwise a fresh
// empty array (index segment) or object (key segment).
func copyForSegment(v *Value, seg Segment) *Value {
	want := KindObject
	if !seg.KeySeg {
		want = KindArray
	}
	if v == nil || v.Kind != want {
		if seg.KeySeg {
			return Object()
		}
		return Array()
	}
	return v.Copy()
}

func childAt(container *Value, seg Segment) *Value {
	if seg.KeySeg {
		child, _ := container.Field(seg.Key)
		return child
	}
	if seg.Index >= 0 && seg.Index < len(container.Items) {
		return container.Items[seg.Index]
	}
	return nil
}

// place assigns v at seg within container, which must already be the
// matching container kind. Index writes past the end pad with nulls.
func place(container *Value, seg Segment, v *Value) {
	if seg.KeySeg {
		container.SetField(seg.Key, v)
		return
	}
	if seg.Index < 0 {
		return
	}
	for len(container.Items) <= seg.Index {
		container.Items = append(container.Items, Null())
	}
	container.Items[seg.Index] = v
}

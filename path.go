package jsonedit

import (
	"fmt"
	"strings"
)

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	Key    string
	Index  int
	KeySeg bool
}

func Key(k string) Segment { return Segment{Key: k, KeySeg: true} }

func Index(i int) Segment { return Segment{Index: i} }

// Path locates a value within a document. The empty path is the root.
type Path []Segment

// String renders the presentational form: "$" for the root, then one
// bracketed segment per step, keys quoted and indices bare.
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range p {
		if s.KeySeg {
			fmt.Fprintf(&b, "[%q]", s.Key)
		} else {
			fmt.Fprintf(&b, "[%d]", s.Index)
		}
	}
	return b.String()
}

// Equal reports whether both paths have the same segments in the same order.
// A key segment never equals an index segment, even when the key is the
// index's decimal form.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		a, b := p[i], o[i]
		if a.KeySeg != b.KeySeg {
			return false
		}
		if a.KeySeg {
			if a.Key != b.Key {
				return false
			}
		} else if a.Index != b.Index {
			return false
		}
	}
	return true
}

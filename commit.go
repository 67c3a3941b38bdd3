package jsonedit

import (
	"errors"
	"fmt"
)

// ErrNoTarget is returned when a save is attempted with no node selected.
var ErrNoTarget = errors.New("jsonedit: no target node selected")

// Commit applies the user's edited text to the document and returns the new
// document text, 2-space indented. The edited text must be valid JSON; a
// document that no longer parses is replaced by an empty object root rather
// than blocking the edit. A bare-value node is replaced outright; when both
// the node's current value and the edited value are objects, the edited keys
// are shallow-merged over the current ones; anything else is a replace.
//
// Neither input is mutated: on error the caller's document and selection are
// exactly as before, and on success the returned text is a fresh rendering.
// After a successful commit the caller should re-locate the node in its
// rebuilt index by comparing paths with Path.Equal, since node identity does
// not survive a rebuild.
func Commit(docText string, node *Node, editedText string) (string, error) {
	edited, err := Decode([]byte(editedText))
	if err != nil {
		return "", fmt.Errorf("jsonedit: Invalid JSON - please fix syntax before saving: %w", err)
	}
	root, err := Decode([]byte(docText))
	if err != nil {
		root = Object()
	}
	if node == nil {
		return "", ErrNoTarget
	}
	out, err := EncodeIndent(Set(root, node.Path, resolveWrite(root, node, edited)))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// resolveWrite picks the value to install: the edited value as-is (replace),
// or the current object's keys overlaid by the edited object's keys (shallow
// merge). Merge applies only when the node is not a bare value and both
// sides are objects.
func resolveWrite(root *Value, node *Node, edited *Value) *Value {
	if node.bareValue() {
		return edited
	}
	cur, ok := Get(root, node.Path)
	if !ok || cur.Kind != KindObject || edited.Kind != KindObject {
		return edited
	}
	return shallowMerge(cur, edited)
}

// shallowMerge overlays edited's keys onto cur's, one level deep. cur keeps
// its key order, edited wins collisions, and new keys append in edited
// order. Neither input is mutated.
func shallowMerge(cur, edited *Value) *Value {
	merged := cur.Copy()
	for i, k := range edited.Keys {
		merged.SetField(k, edited.Vals[i])
	}
	return merged
}

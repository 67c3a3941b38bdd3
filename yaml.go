package jsonedit

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	gyaml "github.com/goccy/go-yaml"
	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a YAML document into a Value, preserving mapping key
// order and resolving aliases. Empty input decodes to an empty object.
func DecodeYAML(data []byte) (*Value, error) {
	if len(data) == 0 {
		return Object(), nil
	}
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("jsonedit: failed to parse YAML: %w", err)
	}
	if n.Kind == 0 {
		// comment-only or otherwise empty document
		return Object(), nil
	}
	return fromYAMLNode(&n)
}

func fromYAMLNode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Object(), nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		obj := Object()
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.SetField(n.Content[i].Value, val)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := Array()
		for _, c := range n.Content {
			item, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, item)
		}
		return arr, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n), nil
	}
	return nil, fmt.Errorf("jsonedit: unsupported YAML node kind %d", n.Kind)
}

func fromYAMLScalar(n *yaml.Node) *Value {
	switch n.Tag {
	case "!!null":
		return Null()
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return String(n.Value)
		}
		return Bool(b)
	case "!!int":
		if _, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
			return NumberLit(n.Value)
		}
		// hex/octal/binary forms normalize to decimal
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return NumberLit(strconv.FormatInt(i, 10))
		}
		return String(n.Value)
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			// .inf and .nan have no JSON rendering
			return String(n.Value)
		}
		return NumberLit(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return String(n.Value)
}

// EncodeYAML renders v as YAML with the given base indent and sequence
// indentation style, keeping object key order.
func EncodeYAML(v *Value, indent int, indentSeq bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := gyaml.NewEncoder(&buf, gyaml.Indent(indent), gyaml.IndentSequence(indentSeq))
	if err := enc.Encode(toOrdered(v)); err != nil {
		return nil, fmt.Errorf("jsonedit: failed to encode YAML: %w", err)
	}
	_ = enc.Close()
	return buf.Bytes(), nil
}

// toOrdered converts a Value to the ordered structures the goccy encoder
// understands (MapSlice for objects).
func toOrdered(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindNumber:
		if i, err := v.Num.Int64(); err == nil {
			return i
		}
		if f, err := v.Num.Float64(); err == nil {
			return f
		}
		return string(v.Num)
	case KindString:
		return v.Str
	case KindArray:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = toOrdered(item)
		}
		return out
	case KindObject:
		ms := make(gyaml.MapSlice, 0, len(v.Keys))
		for i, k := range v.Keys {
			ms = append(ms, gyaml.MapItem{Key: k, Value: toOrdered(v.Vals[i])})
		}
		return ms
	}
	return nil
}

// CommitYAML is Commit for a document serialized as YAML: the edited node
// text is still JSON, but the document is decoded from YAML and the result
// re-encoded with the indent style detected from the input.
func CommitYAML(docText string, node *Node, editedText string) (string, error) {
	edited, err := Decode([]byte(editedText))
	if err != nil {
		return "", fmt.Errorf("jsonedit: Invalid JSON - please fix syntax before saving: %w", err)
	}
	root, err := DecodeYAML([]byte(docText))
	if err != nil {
		root = Object()
	}
	if node == nil {
		return "", ErrNoTarget
	}
	indent, indentSeq := detectIndentStyle([]byte(docText))
	out, err := EncodeYAML(Set(root, node.Path, resolveWrite(root, node, edited)), indent, indentSeq)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// detectIndentStyle infers the document's base indent (GCD of all observed
// indents) and whether sequences under a mapping key are indented one level
// or sit flush with their key.
func detectIndentStyle(b []byte) (int, bool) {
	lines := bytes.Split(b, []byte("\n"))
	indent := baseIndent(lines)

	votes := 0 // >0 indented sequences, <0 flush
	for i, ln := range lines {
		if skipLine(ln) || !blockKeyLine(ln) {
			continue
		}
		keyIndent := leadingSpaces(ln)
		for j := i + 1; j < len(lines); j++ {
			nxt := lines[j]
			if skipLine(nxt) {
				continue
			}
			if t := bytes.TrimLeft(nxt, " "); len(t) > 0 && t[0] == '-' {
				switch leadingSpaces(nxt) {
				case keyIndent + indent:
					votes++
				case keyIndent:
					votes--
				}
			}
			break
		}
	}
	// no evidence: indented sequences are the common form
	return indent, votes >= 0
}

func baseIndent(lines [][]byte) int {
	g := 0
	for _, ln := range lines {
		if skipLine(ln) {
			continue
		}
		if n := leadingSpaces(ln); n > 0 {
			g = gcd(g, n)
			if g == 1 {
				break
			}
		}
	}
	if g > 0 && g <= 8 {
		return g
	}
	return 2
}

func skipLine(ln []byte) bool {
	t := bytes.TrimSpace(ln)
	return len(t) == 0 || t[0] == '#'
}

// blockKeyLine matches the plain block form "key:", optionally followed by a
// comment. Flow and inline values do not count.
func blockKeyLine(ln []byte) bool {
	idx := bytes.IndexByte(ln, ':')
	if idx < 0 {
		return false
	}
	rest := bytes.TrimSpace(ln[idx+1:])
	return len(rest) == 0 || rest[0] == '#'
}

func leadingSpaces(ln []byte) int {
	i := 0
	for i < len(ln) && ln[i] == ' ' {
		i++
	}
	return i
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

package kconfig

import (
	"errors"
	"fmt"

	"github.com/0xalexb/kfrag/config"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Required top-level keys, in the order they are checked.
const (
	VersionKey = "version"
	TypeKey    = "type"
	ConfigsKey = "configs"
)

// maxAliasDepth bounds alias-to-alias chains.
const maxAliasDepth = 16

var (
	// ErrMissingKey is returned when a required top-level key is absent.
	ErrMissingKey = errors.New("required key not found")
	// ErrNotMapping is returned when the document or its configs section is not a mapping.
	ErrNotMapping = errors.New("value is not a mapping")
	// ErrNonScalar is returned for a list or mapping where a scalar is expected.
	ErrNonScalar = errors.New("value is not a scalar")
	// ErrUnknownAlias is returned for an alias with no matching anchor.
	ErrUnknownAlias = errors.New("unknown alias")
)

// Entry is a single kernel config assignment.
type Entry struct {
	Key   string
	Value string
}

// String renders the entry as a fragment line without the trailing newline.
func (e Entry) String() string {
	return e.Key + "=" + e.Value
}

// Document is a kernel build description.
type Document struct {
	Version string
	Type    string
	// Configs keeps the order of the YAML mapping.
	Configs []Entry

	present map[string]bool
}

// Decode parses a YAML build description.
func Decode(data []byte) (*Document, error) {
	doc := &Document{}

	err := doc.UnmarshalYAML(data)
	if err != nil {
		return nil, err
	}

	err = doc.Validate()
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// UnmarshalYAML implements yaml.BytesUnmarshaler. It walks the syntax tree
// rather than decoding into Go values so that mapping order and the literal
// text of scalars ("6.10", "0x10", "y") survive unchanged. Duplicate keys
// are accepted: the last value wins at the first key's position.
func (d *Document) UnmarshalYAML(data []byte) error {
	file, err := parser.ParseBytes(data, 0, parser.AllowDuplicateMapKey())
	if err != nil {
		return config.Wrap(config.KindParse, "parse", err)
	}

	*d = Document{present: make(map[string]bool)}

	if len(file.Docs) == 0 || file.Docs[0] == nil || file.Docs[0].Body == nil {
		return nil
	}

	body := file.Docs[0].Body
	switch body.(type) {
	case *ast.NullNode, *ast.CommentGroupNode:
		return nil
	}

	dec := &decoder{anchors: collectAnchors(body)}

	top, err := dec.mapping("", body)
	if err != nil {
		return err
	}

	for _, f := range top {
		switch f.key {
		case VersionKey:
			d.Version, err = dec.scalar(VersionKey, f.value)
		case TypeKey:
			d.Type, err = dec.scalar(TypeKey, f.value)
		case ConfigsKey:
			d.Configs, err = dec.entries(f.value)
		default:
			continue
		}

		if err != nil {
			return err
		}

		d.present[f.key] = true
	}

	return nil
}

// Validate reports the first missing required key.
func (d *Document) Validate() error {
	for _, key := range []string{VersionKey, TypeKey, ConfigsKey} {
		if !d.present[key] {
			return &config.Error{Kind: config.KindMissingKey, Op: "lookup", Key: key, Err: ErrMissingKey}
		}
	}

	return nil
}

type field struct {
	key   string
	value ast.Node
}

type decoder struct {
	anchors map[string]ast.Node
}

func collectAnchors(root ast.Node) map[string]ast.Node {
	anchors := make(map[string]ast.Node)

	for _, node := range ast.Filter(ast.AnchorType, root) {
		anchor, ok := node.(*ast.AnchorNode)
		if !ok || anchor.Name == nil {
			continue
		}

		anchors[anchor.Name.GetToken().Value] = anchor.Value
	}

	return anchors
}

// resolve strips anchors and tags and follows aliases.
func (dec *decoder) resolve(path string, node ast.Node) (ast.Node, error) {
	for i := 0; i < maxAliasDepth; i++ {
		switch n := node.(type) {
		case *ast.AnchorNode:
			node = n.Value
		case *ast.TagNode:
			node = n.Value
		case *ast.AliasNode:
			name := n.Value.GetToken().Value

			target, ok := dec.anchors[name]
			if !ok {
				return nil, config.Errorf(config.KindParse, "decode", path, "%w: *%s", ErrUnknownAlias, name)
			}

			node = target
		default:
			return node, nil
		}
	}

	return nil, config.Errorf(config.KindParse, "decode", path, "alias chain deeper than %d", maxAliasDepth)
}

// mapping returns the key/value pairs of node in document order. Merge keys
// (<<) are expanded first so that explicit keys override merged ones.
func (dec *decoder) mapping(path string, node ast.Node) ([]field, error) {
	node, err := dec.resolve(path, node)
	if err != nil {
		return nil, err
	}

	var values []*ast.MappingValueNode

	switch n := node.(type) {
	case *ast.MappingNode:
		values = n.Values
	case *ast.MappingValueNode:
		values = []*ast.MappingValueNode{n}
	default:
		return nil, &config.Error{Kind: config.KindType, Op: "decode", Key: path, Err: fmt.Errorf("%w: got %s", ErrNotMapping, nodeTypeName(node))}
	}

	var merged, explicit []field

	for _, value := range values {
		if value.Key != nil && value.Key.Type() == ast.MergeKeyType {
			inner, err := dec.mapping(path, value.Value)
			if err != nil {
				return nil, err
			}

			merged = append(merged, inner...)

			continue
		}

		key, err := dec.scalar(path, value.Key)
		if err != nil {
			return nil, err
		}

		explicit = append(explicit, field{key: key, value: value.Value})
	}

	return dedupe(append(merged, explicit...)), nil
}

// dedupe keeps the first position of each key and the last value.
func dedupe(fields []field) []field {
	index := make(map[string]int, len(fields))
	out := make([]field, 0, len(fields))

	for _, f := range fields {
		if i, ok := index[f.key]; ok {
			out[i].value = f.value

			continue
		}

		index[f.key] = len(out)
		out = append(out, f)
	}

	return out
}

func (dec *decoder) entries(node ast.Node) ([]Entry, error) {
	fields, err := dec.mapping(ConfigsKey, node)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(fields))

	for _, f := range fields {
		value, err := dec.scalar(ConfigsKey+"."+f.key, f.value)
		if err != nil {
			return nil, err
		}

		entries = append(entries, Entry{Key: f.key, Value: value})
	}

	return entries, nil
}

// scalar returns the text of a scalar node with quotes removed. Null and
// empty values render as "".
func (dec *decoder) scalar(path string, node ast.Node) (string, error) {
	if node == nil {
		return "", nil
	}

	node, err := dec.resolve(path, node)
	if err != nil {
		return "", err
	}

	switch n := node.(type) {
	case *ast.NullNode:
		return "", nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.LiteralNode:
		if n.Value == nil {
			return "", nil
		}

		return n.Value.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		return n.GetToken().Value, nil
	default:
		return "", &config.Error{Kind: config.KindType, Op: "decode", Key: path, Err: fmt.Errorf("%w: got %s", ErrNonScalar, nodeTypeName(node))}
	}
}

func nodeTypeName(node ast.Node) string {
	switch node.(type) {
	case nil:
		return "nothing"
	case *ast.SequenceNode:
		return "sequence"
	case *ast.MappingNode, *ast.MappingValueNode:
		return "mapping"
	default:
		return node.Type().String()
	}
}

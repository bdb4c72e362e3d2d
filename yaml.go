package protos

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v2"
)

// A treeNode is the YAML shape of one node in a prototype tree document:
//
//	person:
//	  attrs:
//	    first_name: Generic
//	  children:
//	    homer:
//	      attrs: {first_name: Homer}
//
// attrs decodes through yaml.MapSlice so the document's declaration order
// carries into the constructed object's attribute list.
type treeNode struct {
	Attrs    yaml.MapSlice       `yaml:"attrs"`
	Children map[string]treeNode `yaml:"children"`
}

// LoadTree builds a prototype tree from the YAML document read from r and
// returns every constructed object keyed by its node name. Children extend
// their parent, so they snapshot the parent's attributes at construction as
// Extend always does. YAML expresses attributes only; attach methods to the
// returned objects with AddMethod.
//
// Node names must be unique across the whole document and attribute keys must
// be strings; violations are InvalidArgumentErrors. An empty document yields
// an empty tree.
func LoadTree(r io.Reader) (map[string]*Object, error) {
	var doc map[string]treeNode
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return map[string]*Object{}, nil
		}
		return nil, err
	}
	objs := make(map[string]*Object, len(doc))
	for name, n := range doc {
		if err := buildTree(name, n, nil, objs); err != nil {
			return nil, err
		}
	}
	return objs, nil
}

// buildTree constructs one node and recurses into its children.
func buildTree(name string, n treeNode, proto *Object, objs map[string]*Object) error {
	if name == "" {
		return &InvalidArgumentError{Reason: "empty node name"}
	}
	if _, ok := objs[name]; ok {
		return &InvalidArgumentError{Reason: fmt.Sprintf("duplicate node name %q", name)}
	}
	attrs, err := documentSlots(n.Attrs)
	if err != nil {
		return err
	}
	var o *Object
	if proto == nil {
		o, err = New(attrs)
	} else {
		o, err = proto.Extend(attrs)
	}
	if err != nil {
		return err
	}
	objs[name] = o
	for child, cn := range n.Children {
		if err := buildTree(child, cn, o, objs); err != nil {
			return err
		}
	}
	return nil
}

// documentSlots converts a decoded YAML mapping into construction slots,
// keeping the document's key order.
func documentSlots(m yaml.MapSlice) (Slots, error) {
	attrs := make(Slots, 0, len(m))
	for _, item := range m {
		k, ok := item.Key.(string)
		if !ok {
			return nil, &InvalidArgumentError{Reason: fmt.Sprintf("attribute key %v is not a string", item.Key)}
		}
		attrs = append(attrs, Slot{Name: k, Value: item.Value})
	}
	return attrs, nil
}

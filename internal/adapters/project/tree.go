package project

import (
	"maps"
	"slices"

	"github.com/beevik/etree"
)

// defaultNamespace returns the namespace URI bound to unprefixed names on the root element.
func defaultNamespace(root *etree.Element) string {
	return root.SelectAttrValue("xmlns", "")
}

// descendants returns every element below root whose local name is one of tags and whose
// namespace is the document's default namespace, in document order.
func descendants(root *etree.Element, tags ...string) []*etree.Element {
	if root == nil || len(tags) == 0 {
		return nil
	}

	want := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		want[tag] = struct{}{}
	}

	defaultNS := defaultNamespace(root)
	var out []*etree.Element

	var walk func(el *etree.Element, scope map[string]string)
	walk = func(el *etree.Element, scope map[string]string) {
		for _, child := range el.ChildElements() {
			childScope := bindNamespaces(child, scope)
			if _, ok := want[child.Tag]; ok && childScope[child.Space] == defaultNS {
				out = append(out, child)
			}
			walk(child, childScope)
		}
	}
	walk(root, bindNamespaces(root, nil))

	return out
}

// bindNamespaces returns the prefix-to-URI scope in effect inside el.
// The parent scope is only copied when el declares namespaces of its own.
func bindNamespaces(el *etree.Element, parent map[string]string) map[string]string {
	scope := parent
	declares := slices.ContainsFunc(el.Attr, isNamespaceDecl)
	if !declares {
		if scope == nil {
			return map[string]string{}
		}
		return scope
	}

	scope = maps.Clone(parent)
	if scope == nil {
		scope = map[string]string{}
	}
	for _, attr := range el.Attr {
		switch {
		case attr.Space == "" && attr.Key == "xmlns":
			scope[""] = attr.Value
		case attr.Space == "xmlns":
			scope[attr.Key] = attr.Value
		}
	}
	return scope
}

func isNamespaceDecl(attr etree.Attr) bool {
	return (attr.Space == "" && attr.Key == "xmlns") || attr.Space == "xmlns"
}

// remove detaches el from its parent.
func remove(el *etree.Element) {
	if parent := el.Parent(); parent != nil {
		parent.RemoveChildAt(el.Index())
	}
}

// replace puts with in el's position and detaches el.
func replace(el, with *etree.Element) {
	parent := el.Parent()
	if parent == nil {
		return
	}
	idx := el.Index()
	parent.RemoveChildAt(idx)
	parent.InsertChildAt(idx, with)
}

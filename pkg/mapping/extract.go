package mapping

import (
	"strconv"

	"github.com/aretw0/burrow/pkg/domain"
	"github.com/aretw0/burrow/pkg/xmltree"
)

// requireAttr returns the first value of a required attribute.
func requireAttr(n *xmltree.Node, entity, name string) (string, error) {
	v, ok := n.Attr(name)
	if !ok {
		return "", &domain.MissingFieldError{Entity: entity, Field: name}
	}
	return v, nil
}

// requireInt returns a required attribute parsed as a base-10 integer.
func requireInt(n *xmltree.Node, entity, name string) (int, error) {
	raw, err := requireAttr(n, entity, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.MalformedValueError{Entity: entity, Field: name, Value: raw, Err: err}
	}
	return v, nil
}

// requireChild returns the first direct child with the given name.
func requireChild(n *xmltree.Node, entity, name string) (*xmltree.Node, error) {
	c, ok := n.Child(name)
	if !ok {
		return nil, &domain.MissingFieldError{Entity: entity, Field: name}
	}
	return c, nil
}

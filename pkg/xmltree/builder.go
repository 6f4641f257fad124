package xmltree

import (
	"encoding/xml"
	"errors"
)

// EventSource yields XML tokens one at a time. *xml.Decoder satisfies it.
type EventSource interface {
	Token() (xml.Token, error)
}

// errUnbalanced is returned when an end tag arrives with nothing open.
var errUnbalanced = errors.New("end element without matching start element")

// ReadOne reads exactly one top-level element and its subtree from src.
//
// Nodes under construction live on an explicit stack. A start tag pushes a node; an end tag either
// attaches the top node to its parent or, when only the top-level node remains, completes it.
// Completion requires at least one start tag so that the very first push of a call can never be
// mistaken for a finished element.
func ReadOne(src EventSource) (*Node, error) {
	stack := make([]*Node, 0, 8)
	seenStart := false

	for {
		tok, err := src.Token()
		if err != nil {
			return nil, &StreamError{Depth: len(stack), Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := NewNode(t.Name.Local)
			for _, a := range t.Attr {
				node.AddAttr(a.Name.Local, a.Value)
			}
			stack = append(stack, node)
			seenStart = true

		case xml.EndElement:
			switch {
			case len(stack) > 1:
				child := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				stack[len(stack)-1].Append(child)
			case len(stack) == 1 && seenStart:
				return stack[0], nil
			default:
				return nil, &StreamError{Depth: 0, Err: errUnbalanced}
			}
		}
	}
}

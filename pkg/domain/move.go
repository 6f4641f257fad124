package domain

import "fmt"

// Move is a serialized move fragment. The session writes XML back to the server verbatim.
type Move struct {
	XML string
}

// Advance moves the hare forward by distance fields.
func Advance(distance int) Move {
	return Move{XML: fmt.Sprintf(`<advance order="0" distance="%d" />`, distance)}
}

// FallBack moves the hare back to the previous hedgehog field.
func FallBack() Move {
	return Move{XML: `<fallBack order="0" />`}
}

// IsZero reports whether the move is empty.
func (m Move) IsZero() bool {
	return m.XML == ""
}

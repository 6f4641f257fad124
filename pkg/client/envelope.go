package client

import (
	"encoding/xml"
	"errors"
	"io"

	"github.com/aretw0/burrow/pkg/protocol"
)

// envelope hides the server's outer <protocol> element from the tree builder.
// The opening tag is swallowed and the closing tag is reported as io.EOF, so every
// message inside the stream is read as its own top-level element.
type envelope struct {
	dec    *xml.Decoder
	opened bool
	depth  int
}

func newEnvelope(r io.Reader) *envelope {
	return &envelope{dec: xml.NewDecoder(r)}
}

func (e *envelope) Token() (xml.Token, error) {
	for {
		tok, err := e.dec.Token()
		if err != nil {
			var syntax *xml.SyntaxError
			// The server may drop the connection without closing the envelope.
			if e.opened && e.depth == 0 && errors.As(err, &syntax) && syntax.Msg == "unexpected EOF" {
				return nil, io.EOF
			}
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if e.depth == 0 && !e.opened && t.Name.Local == protocol.ElementProtocol {
				e.opened = true
				continue
			}
			e.depth++
		case xml.EndElement:
			if e.depth == 0 && e.opened && t.Name.Local == protocol.ElementProtocol {
				return nil, io.EOF
			}
			e.depth--
		}
		return tok, nil
	}
}

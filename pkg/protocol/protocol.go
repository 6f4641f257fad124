// Package protocol builds the outbound frames of the game protocol and names its inbound markers.
package protocol

import (
	"encoding/xml"
	"strings"
)

// DefaultGameType is the game joined when no reservation code is given.
const DefaultGameType = "swc_2018_hase_und_igel"

// Inbound element names.
const (
	ElementProtocol = "protocol"
	ElementJoined   = "joined"
	ElementData     = "data"
	ElementLeft     = "left"
)

// Values of the "class" attribute on data elements.
const (
	ClassMemento        = "memento"
	ClassWelcomeMessage = "welcomeMessage"
	ClassMoveRequest    = "sc.framework.plugins.protocol.MoveRequest"
	ClassMove           = "move"
)

// Prolog opens the client's side of the stream.
func Prolog() string {
	return "<protocol>"
}

// Join requests a seat in any open game of the given type.
func Join(gameType string) string {
	return `<join gameType="` + escape(gameType) + `"/>`
}

// JoinPrepared claims a seat reserved by the server administrator.
func JoinPrepared(reservationCode string) string {
	return `<joinPrepared reservationCode="` + escape(reservationCode) + `"/>`
}

// MoveResponse wraps a serialized move in the room envelope.
// The move fragment is written verbatim.
func MoveResponse(roomID, move string) string {
	var sb strings.Builder
	sb.WriteString(`<room roomId="`)
	sb.WriteString(escape(roomID))
	sb.WriteString(`"><data class="`)
	sb.WriteString(ClassMove)
	sb.WriteString(`">`)
	sb.WriteString(move)
	sb.WriteString(`</data></room>`)
	return sb.String()
}

func escape(s string) string {
	var sb strings.Builder
	// strings.Builder never fails.
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}

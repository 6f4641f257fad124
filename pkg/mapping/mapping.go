// Package mapping converts generic element trees into game entities.
//
// Every function is pure and either returns a fully populated value or an error matching
// domain.ErrMissingField or domain.ErrMalformedValue. Attribute lookups only ever use the first
// value recorded for a name.
package mapping

import (
	"fmt"

	"github.com/aretw0/burrow/pkg/domain"
	"github.com/aretw0/burrow/pkg/xmltree"
)

// Card maps a card element (attribute "type").
func Card(n *xmltree.Node) (domain.Card, error) {
	typ, err := requireAttr(n, "card", "type")
	if err != nil {
		return domain.Card{}, err
	}
	return domain.Card{Type: typ}, nil
}

// Field maps a field element (attributes "type" and "index").
func Field(n *xmltree.Node) (domain.Field, error) {
	typ, err := requireAttr(n, "field", "type")
	if err != nil {
		return domain.Field{}, err
	}
	index, err := requireInt(n, "field", "index")
	if err != nil {
		return domain.Field{}, err
	}
	return domain.Field{Type: typ, Index: index}, nil
}

// Player maps a player element. Cards are read from the children of its "cards" child.
func Player(n *xmltree.Node) (domain.Player, error) {
	const entity = "player"

	var (
		p   domain.Player
		err error
	)
	if p.DisplayName, err = requireAttr(n, entity, "displayName"); err != nil {
		return domain.Player{}, err
	}
	if p.Color, err = requireAttr(n, entity, "color"); err != nil {
		return domain.Player{}, err
	}
	if p.Index, err = requireInt(n, entity, "index"); err != nil {
		return domain.Player{}, err
	}
	if p.Carrots, err = requireInt(n, entity, "carrots"); err != nil {
		return domain.Player{}, err
	}
	if p.Salads, err = requireInt(n, entity, "salads"); err != nil {
		return domain.Player{}, err
	}

	cards := n.ChildrenOf("cards")
	p.Cards = make([]domain.Card, 0, len(cards))
	for i, c := range cards {
		card, err := Card(c)
		if err != nil {
			return domain.Player{}, fmt.Errorf("card %d: %w", i, err)
		}
		p.Cards = append(p.Cards, card)
	}
	return p, nil
}

// Board maps a board element. Fields are read from the children of its "fields" child.
func Board(n *xmltree.Node) (domain.Board, error) {
	fields := n.ChildrenOf("fields")
	b := domain.Board{Fields: make([]domain.Field, 0, len(fields))}
	for i, c := range fields {
		f, err := Field(c)
		if err != nil {
			return domain.Board{}, fmt.Errorf("field %d: %w", i, err)
		}
		b.Fields = append(b.Fields, f)
	}
	return b, nil
}

// GameState maps a state element with "red", "blue" and "board" children.
func GameState(n *xmltree.Node) (domain.GameState, error) {
	const entity = "state"

	redNode, err := requireChild(n, entity, "red")
	if err != nil {
		return domain.GameState{}, err
	}
	blueNode, err := requireChild(n, entity, "blue")
	if err != nil {
		return domain.GameState{}, err
	}
	boardNode, err := requireChild(n, entity, "board")
	if err != nil {
		return domain.GameState{}, err
	}

	red, err := Player(redNode)
	if err != nil {
		return domain.GameState{}, fmt.Errorf("red: %w", err)
	}
	blue, err := Player(blueNode)
	if err != nil {
		return domain.GameState{}, fmt.Errorf("blue: %w", err)
	}
	board, err := Board(boardNode)
	if err != nil {
		return domain.GameState{}, fmt.Errorf("board: %w", err)
	}

	return domain.GameState{Red: red, Blue: blue, Board: board}, nil
}

// Room maps a joined element (attribute "roomId").
func Room(n *xmltree.Node) (domain.Room, error) {
	id, err := requireAttr(n, "joined", "roomId")
	if err != nil {
		return domain.Room{}, err
	}
	return domain.Room{ID: id}, nil
}

// Joined maps a joined element (attribute "roomId").
func Joined(n *xmltree.Node) (domain.Joined, error) {
	room, err := Room(n)
	if err != nil {
		return domain.Joined{}, err
	}
	return domain.Joined{ID: room.ID}, nil
}

// WelcomeMessage maps a welcome data element (attribute "color").
func WelcomeMessage(n *xmltree.Node) (domain.WelcomeMessage, error) {
	color, err := requireAttr(n, "welcomeMessage", "color")
	if err != nil {
		return domain.WelcomeMessage{}, err
	}
	return domain.WelcomeMessage{Color: color}, nil
}

// Memento maps a memento data element with a "state" child.
func Memento(n *xmltree.Node) (domain.Memento, error) {
	stateNode, err := requireChild(n, "memento", "state")
	if err != nil {
		return domain.Memento{}, err
	}
	state, err := GameState(stateNode)
	if err != nil {
		return domain.Memento{}, fmt.Errorf("memento: %w", err)
	}
	return domain.Memento{State: state}, nil
}

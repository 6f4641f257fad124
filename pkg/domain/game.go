package domain

import "strings"

// Colors assigned by the server.
const (
	ColorRed  = "red"
	ColorBlue = "blue"
)

// Field types on the race track.
const (
	FieldStart     = "START"
	FieldGoal      = "GOAL"
	FieldCarrot    = "CARROT"
	FieldSalad     = "SALAD"
	FieldHare      = "HARE"
	FieldHedgehog  = "HEDGEHOG"
	FieldPosition1 = "POSITION_1"
	FieldPosition2 = "POSITION_2"
)

// Room identifies the game room the client joined.
type Room struct {
	ID string `json:"id"`
}

// Joined is the raw acknowledgement of a join request. It carries the same identifier as Room.
type Joined struct {
	ID string `json:"id"`
}

// WelcomeMessage assigns the side this client plays for the rest of the session.
type WelcomeMessage struct {
	Color string `json:"color"`
}

// Card is a hare card held by a player.
type Card struct {
	Type string `json:"type"`
}

// Player is one side of the race.
type Player struct {
	DisplayName string `json:"display_name"`
	Color       string `json:"color"`
	Index       int    `json:"index"`
	Carrots     int    `json:"carrots"`
	Salads      int    `json:"salads"`
	Cards       []Card `json:"cards"`
}

// Clone returns a deep copy of the player.
func (p Player) Clone() Player {
	c := p
	if p.Cards != nil {
		c.Cards = make([]Card, len(p.Cards))
		copy(c.Cards, p.Cards)
	}
	return c
}

// Field is a single track position.
type Field struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// Board is the race track, ordered by field index.
type Board struct {
	Fields []Field `json:"fields"`
}

// GameState is a complete snapshot sent by the server. Each update replaces the previous one.
type GameState struct {
	Red   Player `json:"red"`
	Blue  Player `json:"blue"`
	Board Board  `json:"board"`
}

// Clone returns a deep copy of the state.
func (s GameState) Clone() GameState {
	c := GameState{Red: s.Red.Clone(), Blue: s.Blue.Clone()}
	if s.Board.Fields != nil {
		c.Board.Fields = make([]Field, len(s.Board.Fields))
		copy(c.Board.Fields, s.Board.Fields)
	}
	return c
}

// Players splits the state into the player with the given color and its opponent.
func (s GameState) Players(color string) (me, opponent Player, err error) {
	switch {
	case strings.EqualFold(s.Red.Color, color):
		return s.Red, s.Blue, nil
	case strings.EqualFold(s.Blue.Color, color):
		return s.Blue, s.Red, nil
	default:
		return Player{}, Player{}, NewPreconditionError("no player with color %q in game state", color)
	}
}

// Memento carries a state update.
type Memento struct {
	State GameState `json:"state"`
}

/*
Package domain contains the game entities exchanged with a Hase und Igel server and the error
taxonomy shared by every other package.

The types are plain values with no I/O. A GameState is always complete: the mapping layer either
builds every part of it or returns an error, so partially filled snapshots never escape.

# Key Entities

  - Room, Joined, WelcomeMessage: session setup messages.
  - Player, Card, Field, Board: the parts of a snapshot.
  - GameState, Memento: a full snapshot and its update envelope.
  - Move: an opaque serialized move written back to the server.
*/
package domain

/*
Package burrow is a game client for the Hase und Igel board game played over the Software
Challenge XML protocol.

A session opens a TCP connection to a game server, joins a room (optionally through a
reservation code), keeps the latest game state and answers every move request with a move
chosen by a strategy. The inbound stream is one long XML document; it is read incrementally
and every complete second-level element is dispatched as soon as it closes.

# Packages

  - pkg/xmltree turns a token stream into generic element trees.
  - pkg/mapping maps trees onto the typed records in pkg/domain.
  - pkg/protocol writes the outbound messages.
  - pkg/client runs the session and notifies listeners.
  - pkg/strategy holds move strategies, including the default "advance to the nearest carrot field".
  - pkg/persistence records game state snapshots through pkg/ports stores (memory, file, Redis).
  - pkg/observability and pkg/adapters/http expose metrics, health and state streams.

# Usage

	c := client.New(client.WithListener(client.Hooks{
		MoveRequest: strategy.Default,
	}))
	if err := c.Run(ctx, "localhost:13050", ""); err != nil {
		log.Fatal(err)
	}

The burrow command in cmd/burrow wires all of the above from flags, environment variables and
an optional config file.
*/
package burrow

// Package client implements the protocol session of the game client.
//
// A Client performs the handshake, reads one top-level element at a time from the server stream,
// maps it to a game entity and notifies its listeners in registration order. Move requests are
// answered with the move chosen by the first listener, or by strategy.Default when none is registered.
//
// Basic usage:
//
//	c := client.New(client.WithLogger(logger))
//	c.AddListener(client.Hooks{OnMoveRequest: myStrategy})
//	if err := c.Run(ctx, "localhost:13050", ""); err != nil {
//		// every recognized failure is fatal
//	}
package client

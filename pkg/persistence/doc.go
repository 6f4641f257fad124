// Package persistence records game state snapshots while a session runs.
//
// Recorder is a passive client.Listener that writes every state update to a ports.SnapshotStore,
// keyed by the joined room. Store behavior such as name redaction is layered with the middleware
// subpackage.
package persistence

/*
Package ports defines the driven ports (interfaces) used by the game client's observers.

These interfaces decouple the session from storage backends, so the same recorder can write to
memory, the local filesystem or Redis.

# Key Interfaces

  - SnapshotStore: persists the latest GameState seen in each room.

RunSnapshotStoreContract verifies an implementation against the shared expectations.
*/
package ports

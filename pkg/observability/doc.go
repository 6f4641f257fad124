/*
Package observability exports session activity as Prometheus metrics.

Metrics is a passive client.Listener: register it after the listener that picks moves, and wrap the
move strategy with Instrument to count the moves actually sent.
*/
package observability

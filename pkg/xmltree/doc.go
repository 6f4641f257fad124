/*
Package xmltree assembles generic element trees from an XML token stream.

A game server frames its messages as a sequence of top-level XML elements on one long-lived
stream. ReadOne consumes exactly one of those elements, including its full subtree, and leaves the
token source positioned right after the element's closing tag so the next call picks up the next
message.

Nodes are domain-agnostic: they carry a name, attributes and children, nothing else. Turning a Node
into a typed value is the job of the caller.
*/
package xmltree

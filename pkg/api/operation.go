package api

import (
	"net/url"
)

// opKind maps to the RPC backend's three entry points.
type opKind int

const (
	opQuery opKind = iota
	opMutation
	opAction
)

// operation describes one backend call in both wire dialects. Typed
// methods build these; the codec picks the half it understands.
type operation struct {
	// RPC: function path and arguments, e.g. "transactions:list".
	fn   string
	kind opKind
	args map[string]any

	// REST: method, resource path, query and body.
	method string
	path   string
	query  url.Values
	body   any

	// Registration, login and the like carry no identity.
	skipIdentity bool
}

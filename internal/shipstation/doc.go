// Package shipstation is the client for the upstream order store.
//
// It owns the wire types, the HTTP plumbing, and the error taxonomy at the
// transport boundary. Transport and decode failures never escape as raw
// errors: they are downgraded here to ErrOrderNotFound (empty result set)
// or *APIError (everything else), so the routing layer only ever sees
// typed outcomes.
//
// Orders are never persisted locally. Every operation fetches fresh and
// mutations are read-modify-write against the upstream store; the upstream
// order update endpoint requires the complete order object, so Order
// round-trips fields this tool does not interpret via json.RawMessage.
package shipstation

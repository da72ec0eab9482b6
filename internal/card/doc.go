// Package card loads the local agent card, the descriptor that names the
// identity being registered. Only the "name" field is consumed; the rest of
// the document is kept as an opaque read-only mapping.
package card

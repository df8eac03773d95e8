// Package orderrepo persists the order collection through the key-value
// store port: the whole collection is one JSON document under a single key,
// rewritten wholesale on every commit. The in-memory copy is authoritative
// between restarts of the process; the document exists so a restart can
// restore it.
package orderrepo

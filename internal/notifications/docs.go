// Package notifications implements the in-memory alert dispatcher: the
// single queue every producer (order lifecycle, demand refresh) feeds and
// the HTTP layer reads. Alerts are ephemeral and never persisted.
package notifications

// Package todo defines the values exchanged with the remote todo API.
//
// Items and identifiers are opaque: the client passes them through without
// reading, validating, or mutating them. Their shape belongs to whoever
// produces them (a UI layer, a test harness).
package todo

// Item is a single todo entry. Any JSON-serializable value is accepted.
type Item = any

// ID names a todo entry. Its type is unspecified and nil is a legal value.
type ID = any

// Result is the tagged outcome of a mutating operation. Save populates Data
// with the items it was given; Delete populates ID.
type Result struct {
	Success bool
	Data    []Item
	ID      ID
}

// Saved returns the success result for a save of items. The slice is the
// caller's own, not a copy.
func Saved(items []Item) *Result {
	return &Result{Success: true, Data: items}
}

// Deleted returns the success result for a delete of id.
func Deleted(id ID) *Result {
	return &Result{Success: true, ID: id}
}

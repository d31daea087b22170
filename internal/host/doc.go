// Package host runs a pebbles.Engine the way a message-driven execution
// environment would.
//
// A Runtime owns the engine and a mailbox. Callers submit requests with Send;
// a single goroutine (Run) takes them one at a time, stamps each with a fresh
// message id, applies it to the engine and persists the committed slot before
// the reply is released. If persisting fails the slot is rolled back, so an
// invocation either fully happens or not at all.
//
// Every invocation has a computation budget measured from the moment it was
// submitted. A caller that has not been served within the budget gets
// ErrBudgetExceeded and the invocation is discarded without running.
package host

// Package events publishes task lifecycle notifications.
//
// The store emits a TaskEvent after every successful mutation. Handlers are
// registered on an Emitter and run synchronously in registration order; a
// failing handler does not prevent the remaining handlers from running.
package events

// Package engine holds the hero planner's rules: validation of progress
// updates, the relic milestone table and the cost calculations built on it.
//
// Everything here is a pure function over values the caller already fetched.
// No I/O, no shared mutable state; callers may use it from any goroutine.
package engine

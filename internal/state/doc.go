// Package state holds the display state for the weather view. Only the UI
// event loop mutates it, and only through its defined operations; background
// fetch goroutines never touch it.
package state

// Package events defines the focus-change events produced by the
// foreground watcher and a small in-memory emitter for dispatching them.
// It decouples the watcher from the components that react to focus
// changes, such as the capture session handler.
package events

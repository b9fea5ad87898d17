// Package api implements the client's local status HTTP surface. It is
// advisory observability only: a health check and a read-only view of the
// orchestrator's active and pending tasks. Nothing in the orchestration
// core depends on it.
package api

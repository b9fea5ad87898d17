// Package task implements the client's in-process task orchestration core.
// It accepts heterogeneous units of asynchronous work, starts them on their
// own goroutines in enqueue order, tracks their lifecycle through execution
// handles, and reclaims bookkeeping state once they finish. Some tasks run
// once, some run for the entire process lifetime (e.g. polling loops); the
// orchestrator never needs to know which.
package task

// Package workers provides abstractions for managing and running
// background workers in the application, plus the concrete maintenance
// workers themselves.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

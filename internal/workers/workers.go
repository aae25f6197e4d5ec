package workers

// Workers aggregates a set of background workers so they can be launched
// together.
type Workers struct {
	workers []Worker
}

// NewWorkers builds an aggregate over the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in registration order. Workers that should not
// block the caller are expected to spawn their own goroutines.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers into a single runnable aggregate.
func NewWorkers(w ...Worker) *Workers {
	return &Workers{workers: w}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

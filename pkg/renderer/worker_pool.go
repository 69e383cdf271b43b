package renderer

import (
	"context"
	"runtime"
	"sync"
)

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	J      int // Logical image row, 0 = bottom
	TaskID int // Scan order index, for deterministic ordering
}

// RowResult contains the result from rendering a row
type RowResult struct {
	TaskID int
	Stats  RenderStats
	Error  error
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	buffer      *PixelBuffer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool rendering into buffer with the
// specified number of workers
func NewWorkerPool(raytracer *Raytracer, buffer *PixelBuffer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	numWorkers = min(numWorkers, buffer.Height)

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, buffer.Height),   // Buffer for all rows
		resultQueue: make(chan RowResult, buffer.Height), // Buffer for all results
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			buffer:      buffer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop waits for queued tasks to drain and shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Skip remaining rows once cancelled, but keep draining the queue
		if err := ctx.Err(); err != nil {
			w.resultQueue <- RowResult{TaskID: task.TaskID, Error: err}
			continue
		}

		// Each row writes to its own slice of the buffer, so this is thread-safe
		row := w.buffer.Row(w.buffer.Height - 1 - task.J)
		stats := w.raytracer.RenderRow(task.J, row)

		w.resultQueue <- RowResult{
			TaskID: task.TaskID,
			Stats:  stats,
		}
	}
}

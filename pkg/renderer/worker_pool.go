package renderer

import (
	"runtime"
	"sync"
)

// TileTask asks a worker to bring one tile up to TargetSamples per pixel
type TileTask struct {
	Tile          *Tile
	PassNumber    int
	TargetSamples int
	TaskID        int            // Index of the tile, echoed in the result
	PixelStats    [][]PixelStats // Shared per-pixel accumulators in image coordinates
}

// TileResult reports a finished TileTask
type TileResult struct {
	TaskID int
	Stats  RenderStats
	Error  error
}

// WorkerPool renders tiles on a fixed set of goroutines.
// The scene is shared read-only. Tiles never overlap, so workers write disjoint pixels.
type WorkerPool struct {
	scene      Scene
	numWorkers int
	tasks      chan TileTask
	results    chan TileResult

	wg sync.WaitGroup

	mu      sync.Mutex // Guards started, stopped and sends on tasks
	started bool
	stopped bool
}

// NewWorkerPool creates a pool of numWorkers goroutines (runtime.NumCPU when <= 0).
// Both queues buffer maxTasks entries so a whole pass can be submitted without blocking.
func NewWorkerPool(scene Scene, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	maxTasks = max(1, maxTasks)

	return &WorkerPool{
		scene:      scene,
		numWorkers: numWorkers,
		tasks:      make(chan TileTask, maxTasks),
		results:    make(chan TileResult, maxTasks),
	}
}

// Start launches the workers. Later calls, and calls after Stop, do nothing.
func (wp *WorkerPool) Start() {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	if wp.started || wp.stopped {
		return
	}
	wp.started = true

	wp.wg.Add(wp.numWorkers)
	for range wp.numWorkers {
		// Each worker owns a raytracer so per-pass sample targets never race
		go wp.work(NewRaytracer(wp.scene))
	}
}

// Stop drains the workers and closes the result queue. Later calls do nothing.
// It is safe to call while another goroutine is submitting.
func (wp *WorkerPool) Stop() {
	wp.mu.Lock()
	if wp.stopped {
		wp.mu.Unlock()
		return
	}
	wp.stopped = true
	close(wp.tasks)
	wp.mu.Unlock()

	wp.wg.Wait()
	close(wp.results)
}

// Stopped reports whether Stop has been called
func (wp *WorkerPool) Stopped() bool {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	return wp.stopped
}

// SubmitTask queues a task, or returns ErrWorkerPoolClosed once Stop has been called.
// Callers must keep at most maxTasks tasks outstanding so the send never blocks.
func (wp *WorkerPool) SubmitTask(task TileTask) error {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	if wp.stopped {
		return ErrWorkerPoolClosed
	}
	wp.tasks <- task
	return nil
}

// GetResult waits for the next result; ok is false once the pool is stopped and drained
func (wp *WorkerPool) GetResult() (result TileResult, ok bool) {
	result, ok = <-wp.results
	return result, ok
}

func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) work(raytracer *Raytracer) {
	defer wp.wg.Done()

	for task := range wp.tasks {
		raytracer.MergeSamplingConfig(SamplingConfig{SamplesPerPixel: task.TargetSamples})
		wp.results <- TileResult{
			TaskID: task.TaskID,
			Stats:  raytracer.RenderBounds(task.Tile.Bounds, task.PixelStats, task.Tile.Random),
		}
	}
}

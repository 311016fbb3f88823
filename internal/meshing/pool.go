package meshing

import (
	"context"
	"sync"

	"github.com/math-eaton/website/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// FaceJob asks for one face point set to be triangulated.
type FaceJob struct {
	Index  int
	Points []mgl32.Vec3
	// Result receives exactly one FaceResult for this job.
	Result chan<- FaceResult
}

// FaceResult carries the mesh of a FaceJob.
type FaceResult struct {
	Index    int
	Geometry *scene.Geometry
}

// WorkerPool triangulates faces on a fixed set of goroutines.
type WorkerPool struct {
	jobQueue chan FaceJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool starts workers goroutines reading from a queue of queueSize jobs.
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		jobQueue: make(chan FaceJob, queueSize),
		workers:  max(workers, 1),
		ctx:      ctx,
		cancel:   cancel,
	}
	for i := 0; i < pool.workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

// SubmitJob queues job without blocking. It reports false if the queue is
// full or the pool has shut down.
func (p *WorkerPool) SubmitJob(job FaceJob) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			job.Result <- FaceResult{Index: job.Index, Geometry: TriangulateFace(job.Points)}
		case <-p.ctx.Done():
			return
		}
	}
}

// TriangulateAll meshes every face and returns the geometries in input
// order. Faces the pool cannot take are meshed on the calling goroutine, so
// a nil or shut-down pool still produces a full result.
func (p *WorkerPool) TriangulateAll(faces [][]mgl32.Vec3) []*scene.Geometry {
	out := make([]*scene.Geometry, len(faces))
	results := make(chan FaceResult, len(faces))
	pending := 0
	for i, pts := range faces {
		if p != nil && p.SubmitJob(FaceJob{Index: i, Points: pts, Result: results}) {
			pending++
			continue
		}
		out[i] = TriangulateFace(pts)
	}
	for ; pending > 0; pending-- {
		r := <-results
		out[r.Index] = r.Geometry
	}
	return out
}

// Shutdown stops the workers after the queued jobs have drained.
func (p *WorkerPool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobQueue)
	p.mu.Unlock()
	p.wg.Wait()
	p.cancel()
}

// QueueLength returns the number of jobs waiting for a worker.
func (p *WorkerPool) QueueLength() int {
	return len(p.jobQueue)
}

package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/PortalQuest_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool represents a worker pool
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration
	wg         sync.WaitGroup
	quit       chan struct{}

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: DefaultJobTimeout,
		quit:       make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop; on quit it drains whatever is still queued
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			for {
				select {
				case job := <-p.jobQueue:
					p.run(job)
				default:
					return
				}
			}
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job without blocking. When the queue is full or the pool has
// stopped, the job runs on the caller's goroutine instead, so no job is dropped.
// Returns true if the job was queued.
func (p *Pool) Enqueue(job Job) bool {
	p.mu.RLock()
	if !p.stopped {
		select {
		case p.jobQueue <- job:
			p.mu.RUnlock()
			return true
		default:
			slog.Default().Warn(LogMsgQueueFull)
		}
	}
	p.mu.RUnlock()
	p.run(job)
	return false
}

// Stop stops accepting jobs, lets the workers drain the queue and waits for them
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.mu.Unlock()

	slog.Default().Info(LogMsgPoolDraining, "queued", len(p.jobQueue))
	close(p.quit)
	p.wg.Wait()
	slog.Default().Info(LogMsgPoolStopped)
}

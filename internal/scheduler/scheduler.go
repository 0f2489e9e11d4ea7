package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Task is a recurring job that runs fn every interval until stopped.
// Stop never blocks and may be called from inside fn or more than once.
type Task struct {
	id       uuid.UUID
	interval time.Duration
	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// ID identifies the task
func (t *Task) ID() uuid.UUID {
	return t.id
}

// Stop cancels the task. A tick already running finishes; no new tick starts.
func (t *Task) Stop() {
	t.stopOnce.Do(func() { close(t.quit) })
}

// Wait blocks until the task goroutine has exited
func (t *Task) Wait() {
	<-t.done
}

// Done is closed once the task goroutine has exited
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Stopped reports whether Stop has been called
func (t *Task) Stopped() bool {
	select {
	case <-t.quit:
		return true
	default:
		return false
	}
}

func (t *Task) run(fn func(), onExit func()) {
	defer close(t.done)
	defer onExit()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Stop may race with the tick; quit wins.
			if t.Stopped() {
				return
			}
			fn()
		case <-t.quit:
			return
		}
	}
}

// Scheduler owns every running Task so they can all be stopped at shutdown
type Scheduler struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*Task
	wg    sync.WaitGroup
	quit  bool
}

// New creates a new scheduler
func New() *Scheduler {
	return &Scheduler{
		tasks: make(map[uuid.UUID]*Task),
	}
}

// Schedule starts fn on a fixed interval and returns its handle.
// After Stop, Schedule returns an already stopped task.
func (s *Scheduler) Schedule(interval time.Duration, fn func()) *Task {
	t := &Task{
		id:       uuid.New(),
		interval: interval,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	s.mu.Lock()
	if s.quit {
		s.mu.Unlock()
		t.Stop()
		close(t.done)
		return t
	}
	s.tasks[t.id] = t
	s.wg.Add(1)
	s.mu.Unlock()

	go t.run(fn, func() {
		s.mu.Lock()
		delete(s.tasks, t.id)
		s.mu.Unlock()
		s.wg.Done()
	})
	return t
}

// Active returns the number of running tasks
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Stop stops all scheduled tasks and waits for their goroutines to exit
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.quit = true
	for _, t := range s.tasks {
		t.Stop()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

package adapters

import (
	"container/list"
	"sync"
)

type sinkCall func(SinkAdapter)

// AsyncSinkAdapter decorates another SinkAdapter so that dispatch never
// blocks the caller. Calls are queued in FIFO order and delivered by a
// single worker goroutine, preserving per-caller dispatch order. There is
// no batching and no retry; a call handed to the worker is forwarded
// exactly once.
type AsyncSinkAdapter struct {
	next     SinkAdapter
	mu       sync.Mutex
	queue    *list.List
	wake     chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
	started  bool
	stopped  bool
}

// Ensure AsyncSinkAdapter implements SinkAdapter interface
var _ SinkAdapter = (*AsyncSinkAdapter)(nil)

// NewAsyncSinkAdapter creates a new AsyncSinkAdapter wrapping next.
func NewAsyncSinkAdapter(next SinkAdapter) *AsyncSinkAdapter {
	return &AsyncSinkAdapter{
		next:     next,
		queue:    list.New(),
		wake:     make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
}

// LogEvent enqueues an event dispatch.
func (a *AsyncSinkAdapter) LogEvent(name string, parameters map[string]any) {
	a.enqueue(func(s SinkAdapter) { s.LogEvent(name, parameters) })
}

// SetUserID enqueues a user-identity update.
func (a *AsyncSinkAdapter) SetUserID(id string) {
	a.enqueue(func(s SinkAdapter) { s.SetUserID(id) })
}

// SetUserProperty enqueues a user-property update.
func (a *AsyncSinkAdapter) SetUserProperty(name, value string) {
	a.enqueue(func(s SinkAdapter) { s.SetUserProperty(name, value) })
}

func (a *AsyncSinkAdapter) enqueue(call sinkCall) {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	a.queue.PushBack(call)
	a.startWorkerIfNeeded()
	a.mu.Unlock()

	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// startWorkerIfNeeded launches the worker on first enqueue. Caller holds mu.
func (a *AsyncSinkAdapter) startWorkerIfNeeded() {
	if a.started {
		return
	}
	a.started = true
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		for {
			a.drain()
			select {
			case <-a.wake:
			case <-a.stopChan:
				a.drain()
				return
			}
		}
	}()
}

func (a *AsyncSinkAdapter) drain() {
	for {
		a.mu.Lock()
		front := a.queue.Front()
		if front == nil {
			a.mu.Unlock()
			return
		}
		a.queue.Remove(front)
		a.mu.Unlock()

		front.Value.(sinkCall)(a.next)
	}
}

// Len returns the number of calls currently queued.
func (a *AsyncSinkAdapter) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.queue.Len()
}

// Close drains the queue and stops the worker. Calls arriving after Close
// are dropped.
func (a *AsyncSinkAdapter) Close() {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	a.stopped = true
	started := a.started
	a.mu.Unlock()

	close(a.stopChan)
	if started {
		a.wg.Wait()
	} else {
		a.drain()
	}
}

/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gammazero/deque"
	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/forkedge/config"
)

// pool is a fixed-size set of OS-thread-backed goroutines that pull task
// closures from one shared deque, matching §5's "a fixed-size worker pool
// of OS threads... workers pull from a shared deque" directly rather than
// through an assumed third-party scheduler API.
type pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	tasks   deque.Deque
	closing bool
	done    sync.WaitGroup
}

func newPool(n int) *pool {
	p := &pool{}
	p.cond = sync.NewCond(&p.mu)
	p.done.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *pool) worker() {
	defer p.done.Done()
	for {
		p.mu.Lock()
		for p.tasks.Len() == 0 && !p.closing {
			p.cond.Wait()
		}
		if p.tasks.Len() == 0 {
			p.mu.Unlock()
			return
		}
		task := p.tasks.PopFront().(func())
		p.mu.Unlock()
		task()
	}
}

// submit pushes task onto the back of the shared deque and wakes one idle
// worker; unlike a semaphore-gated submit it never blocks the caller, since
// the deque has no fixed capacity.
func (p *pool) submit(task func()) {
	p.mu.Lock()
	p.tasks.PushBack(task)
	p.cond.Signal()
	p.mu.Unlock()
}

// stopWait marks the pool closing and wakes every worker; a worker still
// drains any tasks queued before its wakeup finds the deque empty, so
// in-flight work is never dropped.
func (p *pool) stopWait() {
	p.mu.Lock()
	p.closing = true
	p.cond.Broadcast()
	p.mu.Unlock()
	p.done.Wait()
}

// joinGroup tracks the outstanding children one node has dispatched to p.
// Unlike sync.WaitGroup, the goroutine that awaits a joinGroup helps drain
// p's shared deque while it waits instead of idling. That help is required
// for correctness, not just throughput: every node task above the serial
// depth runs on one of p's N fixed workers and itself dispatches children
// to p before waiting on them. Once N such tasks are in flight, all N
// workers are simultaneously waiting on children sitting in the very deque
// only a worker can drain — a plain WaitGroup.Wait() would block forever at
// any depth deep enough to saturate the pool. Having the waiter pull and run
// tasks itself breaks that cycle.
type joinGroup struct {
	p         *pool
	remaining int32
}

// newJoinGroup returns a joinGroup expecting n children dispatched to p.
func newJoinGroup(p *pool, n int) *joinGroup {
	return &joinGroup{p: p, remaining: int32(n)}
}

func (j *joinGroup) isDone() bool {
	return atomic.LoadInt32(&j.remaining) == 0
}

// dec marks one child complete and wakes any goroutine parked in await
// waiting on new work, so it can re-check isDone.
func (j *joinGroup) dec() {
	atomic.AddInt32(&j.remaining, -1)
	j.p.mu.Lock()
	j.p.cond.Broadcast()
	j.p.mu.Unlock()
}

// await blocks the calling goroutine until every child tracked by j has
// called dec, running other tasks queued on p itself while it waits rather
// than just parking — see joinGroup's doc comment for why this is load
// bearing, not an optimization.
func (p *pool) await(j *joinGroup) {
	for !j.isDone() {
		p.mu.Lock()
		if p.tasks.Len() == 0 {
			p.cond.Wait()
			p.mu.Unlock()
			continue
		}
		task := p.tasks.PopFront().(func())
		p.mu.Unlock()
		task()
	}
}

// poolMu guards current across concurrent SetNumThreads calls.
var (
	poolMu  sync.Mutex
	current *pool

	// runningSem serializes top-level searches against the shared pool, the
	// same role the retrieved engine's own isRunning semaphore plays around
	// its StartSearch entry point.
	runningSem = semaphore.NewWeighted(1)
)

func init() {
	SetNumThreads(config.Settings.Search.NumThreads)
}

// SetNumThreads resizes the process-wide worker pool every parallel search
// variant dispatches child node tasks to. A non-positive n falls back to
// hardware concurrency. The new pool is installed first and the previous
// pool is then drained; tasks already running are allowed to finish, none
// are preempted.
func SetNumThreads(n int) {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	poolMu.Lock()
	old := current
	current = newPool(n)
	poolMu.Unlock()
	if old != nil {
		old.stopWait()
	}
}

// currentPool returns the pool in effect at the call site, for a search
// variant to dispatch children to and later await.
func currentPool() *pool {
	poolMu.Lock()
	defer poolMu.Unlock()
	return current
}

// acquireRun serializes one top-level search at a time against the shared
// pool, mirroring the retrieved engine's isRunning guard; it blocks until
// any prior search has returned.
func acquireRun() {
	_ = runningSem.Acquire(context.Background(), 1)
}

func releaseRun() {
	runningSem.Release(1)
}

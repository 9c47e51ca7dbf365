// Copyright 2026 The hostio Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package aio

import (
	"fmt"
	"sync"

	"github.com/walteh/hostio/pkg/pread"
)

// GoQueue executes requests on a pool of worker goroutines. It works on
// any host since every platform-specific detail lives behind pkg/pread,
// at the cost of one blocked goroutine per in-flight request.
type GoQueue struct {
	requests    chan Request
	completions chan Completion
	shutdown    chan struct{}
	workers     sync.WaitGroup
}

// NewGoQueue creates a GoQueue with the given number of workers and queue
// capacity. Both must be at least 1.
func NewGoQueue(parallelism, capacity int) *GoQueue {
	q := &GoQueue{
		requests:    make(chan Request, capacity),
		completions: make(chan Completion, capacity),
		shutdown:    make(chan struct{}),
	}
	for i := 0; i < parallelism; i++ {
		q.workers.Add(1)
		go q.workerMain()
	}
	return q
}

// Submit enqueues r, blocking while the queue is full. Exactly one
// Completion per submitted Request is later delivered on Completions.
func (q *GoQueue) Submit(r Request) {
	q.requests <- r
}

// Completions returns the channel completions are delivered on, in no
// particular order.
func (q *GoQueue) Completions() <-chan Completion {
	return q.completions
}

// Shutdown stops the workers and waits for them to exit. Requests not yet
// picked up by a worker are dropped without a Completion. Callers must
// drain Completions for all requests they care about before calling
// Shutdown, or a worker stuck delivering a completion will never observe
// the stop signal.
func (q *GoQueue) Shutdown() {
	close(q.shutdown)
	q.workers.Wait()
}

func (q *GoQueue) workerMain() {
	defer q.workers.Done()
	for {
		select {
		case <-q.shutdown:
			return
		case r := <-q.requests:
			var (
				n   int
				err error
			)
			switch r.Op {
			case OpRead:
				n, err = pread.Pread(r.FD, r.Buf, r.Off)
			case OpWrite:
				n, err = pread.Pwrite(r.FD, r.Buf, r.Off)
			default:
				panic(fmt.Sprintf("unknown op %v", r.Op))
			}
			q.completions <- Completion{
				ID:     r.ID,
				Result: int64(n),
				Err:    err,
			}
		}
	}
}
